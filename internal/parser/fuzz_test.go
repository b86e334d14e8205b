package parser

import "testing"

func FuzzParse(f *testing.F) {
	// Seed with representative constructs.
	seeds := []string{
		"import Foundation\n",
		"public extension Foo { func bar() {} var x: Int { 1 } }\n",
		"internal extension Foo {}\n",
		"make() { doWork() }\n",
		"typealias H = (Int) -> ()\n",
		"let a = 0x34950309233\n",
		"/* a */ // b\n/// c\n",
		"struct S { private(set) var x: Int = 0 }\n",
		"\n",
		"",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// The parser must never panic, and anything it accepts round-trips.
		tree, err := Parse(input)
		if err != nil {
			return
		}
		if got := source(tree); got != input {
			t.Errorf("round-trip failed:\nwant: %q\ngot:  %q", input, got)
		}
	})
}
