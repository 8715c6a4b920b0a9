// Copyright (c) 2026 Tigera, Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package params_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	. "github.com/projectcalico/andhow/pkg/params"
)

var _ = Describe("Schema", func() {
	It("should add the standard control parameters to an empty schema", func() {
		s, err := NewSchema()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(s.Len()).To(gomega.Equal(len(ControlTypes)))
		for _, t := range ControlTypes {
			gomega.Expect(s.ByType(t)).NotTo(gomega.BeNil(), t.String())
			gomega.Expect(s.ByType(t).Group()).To(gomega.Equal(ControlGroupName))
		}
		gomega.Expect(s.ByType(PropertiesFileSystemPath).DefaultValue()).To(gomega.Equal([]string{"", "~/"}))
		gomega.Expect(s.ByType(PropertiesFileName).DefaultValue()).To(gomega.Equal("config.properties"))
		gomega.Expect(s.ByType(PropertiesDefaultFileName).DefaultValue()).To(gomega.Equal("default_config.properties"))
	})

	It("should look up names and aliases ignoring case", func() {
		s, err := NewSchema()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(s.Lookup("HELP")).To(gomega.BeIdenticalTo(s.ByType(HelpFlag)))
		gomega.Expect(s.Lookup("h")).To(gomega.BeIdenticalTo(s.ByType(HelpFlag)))
		gomega.Expect(s.Lookup("skippropertiesfromfilesystem")).To(gomega.BeIdenticalTo(s.ByType(SkipPropertiesFromFileSystem)))
		gomega.Expect(s.Lookup("nope")).To(gomega.BeNil())
	})

	It("should keep application groups in order after the control group", func() {
		port := Int("port", "8080", "Listen port.")
		name := String("name", "", "Service name.")
		s, err := NewSchema(Group{Name: "Service", Points: []*ParamPoint{port, name}})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		groups := s.Groups()
		gomega.Expect(groups).To(gomega.HaveLen(2))
		gomega.Expect(groups[0].Name).To(gomega.Equal(ControlGroupName))
		gomega.Expect(groups[1].Points).To(gomega.Equal([]*ParamPoint{port, name}))
		points := s.Points()
		gomega.Expect(points[len(points)-2:]).To(gomega.Equal([]*ParamPoint{port, name}))
		gomega.Expect(port.DefaultValue()).To(gomega.Equal(8080))
		gomega.Expect(name.HasDefault()).To(gomega.BeFalse())
		gomega.Expect(port.Group()).To(gomega.Equal("Service"))
	})

	It("should let the application supply its own control parameter", func() {
		help := Flag("aide", "Help, in French.")
		help.Type = HelpFlag
		s, err := NewSchema(Group{Name: "App", Points: []*ParamPoint{help}})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(s.ByType(HelpFlag)).To(gomega.BeIdenticalTo(help))
		gomega.Expect(s.Lookup("help")).To(gomega.BeNil())
		gomega.Expect(s.Len()).To(gomega.Equal(len(ControlTypes)))
	})

	DescribeTable("invalid declarations",
		func(points []*ParamPoint, errSubstring string) {
			_, err := NewSchema(Group{Name: "Bad", Points: points})
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring(errSubstring))
		},
		Entry("empty name", []*ParamPoint{String("", "", "")}, "invalid declaration"),
		Entry("name with separator", []*ParamPoint{String("a=b", "", "")}, "invalid declaration"),
		Entry("name with space", []*ParamPoint{String("a b", "", "")}, "invalid declaration"),
		Entry("empty alias", []*ParamPoint{{Name: "x", Aliases: []string{""}}}, "invalid declaration"),
		Entry("duplicate name", []*ParamPoint{String("x", "", ""), Int("X", "", "")}, "clashes with"),
		Entry("clash with control alias", []*ParamPoint{String("h", "", "")}, "clashes with"),
		Entry("bad int default", []*ParamPoint{Int("x", "lots", "")}, "invalid default value"),
		Entry("bad flag default", []*ParamPoint{{Name: "x", Kind: KindFlag, Default: "maybe"}}, "invalid default value"),
		Entry("oneof without options", []*ParamPoint{OneOf("x", "", nil, "")}, "has no options"),
		Entry("unknown kind", []*ParamPoint{{Name: "x", Kind: Kind(99)}}, "unknown kind"),
		Entry("list with scalar default", []*ParamPoint{{Name: "x", Kind: KindList, Default: "a"}}, "must use DefaultList"),
		Entry("scalar with list default", []*ParamPoint{{Name: "x", DefaultList: []string{"a"}}}, "DefaultList not allowed"),
		Entry("control type with wrong kind", []*ParamPoint{{Name: "x", Type: HelpFlag, Kind: KindString}}, "must be a flag"),
		Entry("two help flags", []*ParamPoint{
			{Name: "x", Type: HelpFlag, Kind: KindFlag},
			{Name: "y", Type: HelpFlag, Kind: KindFlag},
		}, "both declared as HELP_FLAG"),
		Entry("nil point", []*ParamPoint{nil}, "nil parameter"),
	)

	It("should return a copy of list defaults", func() {
		s, err := NewSchema()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		p := s.ByType(PropertiesFileSystemPath)
		d := p.DefaultValue().([]string)
		d[0] = "mutated"
		gomega.Expect(p.DefaultValue()).To(gomega.Equal([]string{"", "~/"}))
		gomega.Expect(p.DefaultString()).To(gomega.Equal(`["", "~/"]`))
	})

	It("should not share the default search path between schemas", func() {
		s, err := NewSchema()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		s.ByType(PropertiesFileSystemPath).DefaultList[0] = "mutated"
		gomega.Expect(DefaultSearchPath).To(gomega.Equal([]string{"", "~/"}))

		s2, err := NewSchema()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(s2.ByType(PropertiesFileSystemPath).DefaultValue()).To(gomega.Equal([]string{"", "~/"}))
	})
})

var _ = DescribeTable("Parameter parsing",
	func(point *ParamPoint, raw string, expected interface{}, expectErr bool) {
		_, err := NewSchema(Group{Name: "Test", Points: []*ParamPoint{point}})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		actual, err := point.Parse(raw)
		if expectErr {
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring(point.Name))
			gomega.Expect(actual).To(gomega.BeNil())
		} else {
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(actual).To(gomega.Equal(expected))
		}
	},
	Entry("string", String("s", "", ""), "hello world", "hello world", false),
	Entry("string empty", String("s", "", ""), "", "", false),
	Entry("flag true", Flag("f", ""), "true", true, false),
	Entry("flag TRUE", Flag("f", ""), "TRUE", true, false),
	Entry("flag yes", Flag("f", ""), "yes", true, false),
	Entry("flag 1", Flag("f", ""), "1", true, false),
	Entry("flag on", Flag("f", ""), " on ", true, false),
	Entry("flag false", Flag("f", ""), "false", false, false),
	Entry("flag n", Flag("f", ""), "n", false, false),
	Entry("flag 0", Flag("f", ""), "0", false, false),
	Entry("flag garbage", Flag("f", ""), "maybe", nil, true),
	Entry("list element", List("l", nil, ""), "", "", false),
	Entry("int", Int("i", "", ""), "42", 42, false),
	Entry("int negative", Int("i", "", ""), "-7", -7, false),
	Entry("int garbage", Int("i", "", ""), "forty", nil, true),
	Entry("duration seconds", Duration("d", "", ""), "90", 90*time.Second, false),
	Entry("duration fractional seconds", Duration("d", "", ""), "1.5", 1500*time.Millisecond, false),
	Entry("duration go syntax", Duration("d", "", ""), "5m", 5*time.Minute, false),
	Entry("duration garbage", Duration("d", "", ""), "abc", nil, true),
	Entry("oneof canonical", OneOf("o", "", []string{"Info", "Debug"}, ""), "debug", "Debug", false),
	Entry("oneof unknown", OneOf("o", "", []string{"Info", "Debug"}, ""), "trace", nil, true),
)

var _ = Describe("Source", func() {
	It("should rank sources", func() {
		gomega.Expect(Fixed > CommandLine).To(gomega.BeTrue())
		gomega.Expect(CommandLine > PropertyFile).To(gomega.BeTrue())
		gomega.Expect(PropertyFile > Default).To(gomega.BeTrue())
		gomega.Expect(SourcesInDescendingOrder).To(gomega.Equal([]Source{Fixed, CommandLine, PropertyFile}))
	})
	It("should treat only user-supplied sources as strict", func() {
		gomega.Expect(CommandLine.Strict()).To(gomega.BeTrue())
		gomega.Expect(Fixed.Strict()).To(gomega.BeTrue())
		gomega.Expect(PropertyFile.Strict()).To(gomega.BeFalse())
		gomega.Expect(Default.Strict()).To(gomega.BeFalse())
	})
	It("should render unknown sources", func() {
		gomega.Expect(Source(42).String()).To(gomega.Equal("<unknown(42)>"))
	})
})

var _ = Describe("Problem", func() {
	It("should describe where an unrecognized parameter came from", func() {
		p := NewUnrecognizedProblem("colour", "red", CommandLine, "argument 2")
		gomega.Expect(p.Error()).To(gomega.Equal(`unrecognized-parameter (command line, argument 2): unrecognized parameter "colour"`))
	})
})
