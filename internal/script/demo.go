package script

import _ "embed"

//go:embed demo.yaml
var demoYAML []byte

// Demo returns the built-in walkthrough script.
func Demo() *Script {
	s, err := Parse(demoYAML)
	if err != nil {
		panic("script: built-in demo is invalid: " + err.Error())
	}
	return s
}
