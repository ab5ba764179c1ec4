package pkg

import "os"

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadFileContent 读取整个文件内容并返回字符串
func ReadFileContent(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFileContent 将内容写入文件，文件存在时覆盖
func WriteFileContent(filePath string, content string) error {
	return os.WriteFile(filePath, []byte(content), 0o644)
}
