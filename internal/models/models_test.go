package models

import "testing"

func TestJSONText(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"string", String("hi"), `"hi"`},
		{"number keeps literal", Number("1e37"), "1e37"},
		{"bool", Bool(true), "true"},
		{"null", Null{}, "null"},
		{"array", Array{Number("1"), Bool(true)}, "[1,true]"},
		{"empty array", Array{}, "[]"},
		{"object in order", Object{
			{Key: "b", Value: Number("2")},
			{Key: "a", Value: Number("1")},
		}, `{"b":2,"a":1}`},
		{"nested", Array{Array{String("a")}, Object{{Key: "x", Value: Null{}}}}, `[["a"],{"x":null}]`},
		{"quoted string", String(`say "hi"`), `"say \"hi\""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JSONText(tt.value); got != tt.want {
				t.Errorf("JSONText() = %s, want %s", got, tt.want)
			}
		})
	}
}
