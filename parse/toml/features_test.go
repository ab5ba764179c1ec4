package toml

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestArrayOfTables(t *testing.T) {
	convey.Convey("each header appends one element in encounter order", t, func() {
		src := `[[pt]]
x = 1
y = 2

[[pt]]
x = 3
y = 4
`
		doc := ParseString(src)
		sec, err := doc.Section("pt")
		convey.So(err, convey.ShouldBeNil)
		convey.So(sec.IsArray(), convey.ShouldBeTrue)

		gs := sec.Getters()
		convey.So(len(gs), convey.ShouldEqual, 2)
		convey.So(gs[0].Get("x", nil), convey.ShouldEqual, int64(1))
		convey.So(gs[0].Get("y", nil), convey.ShouldEqual, int64(2))
		convey.So(gs[1].Get("x", nil), convey.ShouldEqual, int64(3))
		convey.So(gs[1].Get("y", nil), convey.ShouldEqual, int64(4))
	})

	convey.Convey("N headers make an array of length N", t, func() {
		src := strings.Repeat("[[sensor]]\nid = 1\n", 5)
		doc := ParseString(src)
		sec, err := doc.Section("sensor")
		convey.So(err, convey.ShouldBeNil)
		convey.So(sec.Len(), convey.ShouldEqual, 5)
	})

	convey.Convey("a header over a scalar rebinds it to a fresh array", t, func() {
		src := `pt = 1

[[pt]]
x = 2
`
		doc := ParseString(src)
		n, ok := doc.Entry("pt")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(n.Kind(), convey.ShouldEqual, KindTableArray)
		convey.So(n.(*TableArray).Len(), convey.ShouldEqual, 1)
	})
}

func TestTableReopening(t *testing.T) {
	convey.Convey("reopening a section accumulates into one table", t, func() {
		src := `[a]
x = 1

[b]
y = 2

[a]
z = 3
`
		doc := ParseString(src)
		sec, err := doc.Section("a")
		convey.So(err, convey.ShouldBeNil)
		g := sec.Getters()[0]
		convey.So(g.Get("x", nil), convey.ShouldEqual, int64(1))
		convey.So(g.Get("z", nil), convey.ShouldEqual, int64(3))
		convey.So(g.Keys(), convey.ShouldResemble, []string{"x", "z"})
		convey.So(doc.Len(), convey.ShouldEqual, 2)
	})

	convey.Convey("a reassigned key keeps the latest value", t, func() {
		doc := ParseString("a = 1\na = 2\n")
		convey.So(doc.Global("a", nil), convey.ShouldEqual, int64(2))
		convey.So(doc.Len(), convey.ShouldEqual, 1)
	})
}

func TestPermissiveParsing(t *testing.T) {
	convey.Convey("malformed lines are skipped, never fatal", t, func() {
		src := `# leading comment
title = "t"
this line has no delimiter
= value without a key
   # indented comment

count = 3
`
		doc := ParseString(src)
		convey.So(doc.Len(), convey.ShouldEqual, 2)
		convey.So(doc.Global("title", nil), convey.ShouldEqual, "t")
		convey.So(doc.Global("count", nil), convey.ShouldEqual, int64(3))
	})

	convey.Convey("an empty header name resets the cursor to the root", t, func() {
		src := `[db]
host = "h"

[]
back = "at root"

[[db2]]
x = 1

[[]]
also = "at root"
`
		doc := ParseString(src)
		convey.So(doc.Global("back", nil), convey.ShouldEqual, "at root")
		convey.So(doc.Global("also", nil), convey.ShouldEqual, "at root")
		sec, err := doc.Section("db")
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(sec.Getters()[0].Keys()), convey.ShouldEqual, 1)
	})

	convey.Convey("only the first equals sign splits the line", t, func() {
		doc := ParseString(`query = a=b=c` + "\n")
		convey.So(doc.Global("query", nil), convey.ShouldEqual, "a=b=c")
	})
}

func TestLongLines(t *testing.T) {
	convey.Convey("very long value lines still parse", t, func() {
		big := strings.Repeat("x", 70000)
		doc := ParseString("a = 1\nbig = \"" + big + "\"\n")
		convey.So(doc, convey.ShouldNotBeNil)
		convey.So(doc.Global("a", nil), convey.ShouldEqual, int64(1))
		convey.So(doc.Global("big", nil), convey.ShouldEqual, big)
	})
}

func TestReaderInput(t *testing.T) {
	convey.Convey("Parse accepts any reader", t, func() {
		doc, err := Parse(strings.NewReader("a = 1\n"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(doc.Global("a", nil), convey.ShouldEqual, int64(1))
	})
}
