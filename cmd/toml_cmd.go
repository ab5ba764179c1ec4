package cmd

import (
	"fmt"
	"strings"

	"github.com/dzjyyds666/microtoml/parse/toml"
	"github.com/dzjyyds666/microtoml/pkg"
	"github.com/spf13/cobra"
)

type TomlParams struct {
	Find   string `json:"find"`   // 查找的key，支持 key 或 section.key
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
}

var params *TomlParams

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse tools",
	Run:   tomlRun,
}

func init() {
	params = &TomlParams{}
	tomlCmd.Flags().StringVarP(&params.Find, "find", "f", "", "find")
	tomlCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
}

func tomlRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	content, err := pkg.ReadFileContent(params.Input)
	if err != nil {
		fmt.Println("read file error:", err)
		return
	}
	doc := toml.ParseString(content)

	out, err := findResult(doc, params.Find)
	if err != nil {
		fmt.Println(err)
		return
	}

	if len(params.Output) > 0 {
		if err := pkg.WriteFileContent(params.Output, out); err != nil {
			fmt.Println("write output error:", err)
		}
		return
	}
	fmt.Print(out)
}

// findResult 按find参数在文档中查找，返回可打印的结果文本
func findResult(doc *toml.Document, find string) (string, error) {
	var b strings.Builder

	if len(find) == 0 {
		// 没有指定key，列出根部所有key
		for _, key := range doc.Keys() {
			b.WriteString(key)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	name, key, dotted := strings.Cut(find, ".")
	if !dotted {
		v := doc.Global(find, nil)
		if v == nil {
			// 区分不存在的key和section类型的key
			if _, ok := doc.Entry(find); ok {
				return "", fmt.Errorf("%q is a section, use %s.<key>", find, find)
			}
			return "", fmt.Errorf("key %q not found", find)
		}
		fmt.Fprintf(&b, "%v\n", v)
		return b.String(), nil
	}

	sec, err := doc.Section(name)
	if err != nil {
		return "", err
	}
	for _, g := range sec.Getters() {
		fmt.Fprintf(&b, "%v\n", g.Get(key, "<nil>"))
	}
	return b.String(), nil
}
