package ir

import "fmt"

type Type int

const (
	TemplateType Type = iota
	TextType
	CallType
	ArgType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TemplateType: "Template",
		TextType:     "Text",
		CallType:     "Call",
		ArgType:      "Arg",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Template": TemplateType,
		"Text":     TextType,
		"Call":     CallType,
		"Arg":      ArgType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		TemplateType,
		TextType,
		CallType,
		ArgType,
	}
}

func (t Type) IsLeaf() bool {
	return t == TextType
}
