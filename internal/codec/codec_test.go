package codec

import (
	"reflect"
	"testing"
)

func TestUnmarshalValid(t *testing.T) {
	var out map[string]int
	if !Unmarshal(`{"a":1}`, &out) {
		t.Fatal("expected strict parse to succeed")
	}
	if out["a"] != 1 {
		t.Fatalf("got %v", out)
	}
}

func TestUnmarshalRepairsTruncation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "dangling element after array close",
			in:   `["a","b"],"c`,
			want: []string{"a", "b"},
		},
		{
			name: "odd quotes with dangling tail",
			in:   `["a","b"] "c`,
			want: []string{"a", "b"},
		},
		{
			name: "trailing garbage after object",
			in:   `["x"] trailing`,
			want: []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []string
			if !Unmarshal(tt.in, &out) {
				t.Fatal("expected repair to succeed")
			}
			if !reflect.DeepEqual(out, tt.want) {
				t.Fatalf("got %v, want %v", out, tt.want)
			}
		})
	}
}

func TestUnmarshalFallsBack(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"no structural close", `"just a broken string`},
		{"hopeless", `{{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := map[string]string{"keep": "me"}
			if Unmarshal(tt.in, &out) {
				t.Fatal("expected fallback path")
			}
			// 降级时调用方预置的默认值保持不变
			if out["keep"] != "me" {
				t.Fatalf("default value was clobbered: %v", out)
			}
		})
	}
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"already closed", `{"a":1}`, `{"a":1}`, true},
		{"truncated tail", `[1,2,3],x`, `[1,2,3]`, true},
		{"odd quotes then cut", `{"a":"b}...`, `{"a":"b}`, true},
		{"unrecoverable", `no json here`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Repair(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{}\n```  ", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalModelOutput(t *testing.T) {
	var out struct {
		Questions []string `json:"questions"`
	}
	text := "```json\n{\"questions\":[\"q1\",\"q2\",\"q3\"]}\n```"
	if !UnmarshalModelOutput(text, &out) {
		t.Fatal("expected fenced output to parse")
	}
	if len(out.Questions) != 3 {
		t.Fatalf("got %d questions", len(out.Questions))
	}
}
