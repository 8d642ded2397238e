package html

import "testing"

func TestCleanString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Remove HTML tags", input: "<p>Hello World</p>", expected: "Hello World"},
		{name: "Decode HTML entities", input: "Hello &amp; World &lt;test&gt;", expected: "Hello & World <test>"},
		{name: "Decode numeric entities", input: "Test &#39;quotes&#34;", expected: "Test 'quotes\""},
		{name: "Clean whitespace", input: "Hello    World", expected: "Hello World"},
		{name: "Remove spaces before punctuation", input: "Hello , World . Test", expected: "Hello, World. Test"},
		{name: "Complex HTML with entities", input: "<p>Hello &amp; <strong>World</strong> &nbsp; Test</p>", expected: "Hello & World Test"},
		{name: "Empty string", input: "", expected: ""},
		{name: "Only HTML tags", input: "<div><span></span></div>", expected: ""},
		{name: "Multiple spaces and newlines", input: "Hello    \n\n   World", expected: "Hello World"},
		{name: "Spaces around brackets", input: "Test ( example ) and [ another ]", expected: "Test (example) and [another]"},
		{name: "Script content dropped", input: "Hi<script>var a = 1;</script> there", expected: "Hi there"},
		{name: "Block elements separate words", input: "<p>One</p><p>Two</p>", expected: "One Two"},
		{name: "Line breaks separate words", input: "One<br/>Two", expected: "One Two"},
		{name: "Inline elements keep words together", input: "Wor<b>ld</b>", expected: "World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanString(tt.input)
			if result != tt.expected {
				t.Errorf("CleanString(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCleanWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Multiple spaces", input: "Hello    World", expected: "Hello World"},
		{name: "Spaces before punctuation", input: "Hello , World . Test", expected: "Hello, World. Test"},
		{name: "Spaces after punctuation", input: "Hello,World.Test", expected: "Hello, World. Test"},
		{name: "Spaces around brackets", input: "Test ( example )", expected: "Test (example)"},
		{name: "Leading and trailing spaces", input: "   Hello World   ", expected: "Hello World"},
		{name: "Tabs and newlines", input: "Hello\t\t\n\nWorld", expected: "Hello World"},
		{name: "Empty string", input: "", expected: ""},
		{name: "Numbers keep their separators", input: "Pi is 3.14, about 1,000 times less", expected: "Pi is 3.14, about 1,000 times less"},
		{name: "Ellipsis stays intact", input: "Wait... what", expected: "Wait... what"},
		{name: "Clock times keep their colon", input: "Doors open at 12:30 sharp", expected: "Doors open at 12:30 sharp"},
		{name: "Quote after a full stop", input: `He said "Hi."Then left`, expected: `He said "Hi."Then left`},
		{name: "Ellipsis without a space", input: "Wait...what", expected: "Wait... what"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanWhitespace(tt.input)
			if result != tt.expected {
				t.Errorf("CleanWhitespace(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStripHTML_UnclosedMarkup(t *testing.T) {
	got := StripHTML("Hello <b>World")
	if got != "Hello World" {
		t.Errorf("StripHTML() = %q, want %q", got, "Hello World")
	}
}
