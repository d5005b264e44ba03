package inspect

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr error
	}{
		{
			name:  "object only",
			input: "3303",
			want:  Path{Object: "3303", Instance: -1, ResourceInstance: -1},
		},
		{
			name:  "object instance",
			input: "3303/1",
			want:  Path{Object: "3303", Instance: 1, ResourceInstance: -1},
		},
		{
			name:  "resource",
			input: "3303/0/5700",
			want:  Path{Object: "3303", Instance: 0, Resource: "5700", ResourceInstance: -1},
		},
		{
			name:  "resource instance",
			input: "3/0/6/1",
			want:  Path{Object: "3", Instance: 0, Resource: "6", ResourceInstance: 1},
		},
		{
			name:  "leading slash",
			input: "/3303/0/5700",
			want:  Path{Object: "3303", Instance: 0, Resource: "5700", ResourceInstance: -1},
		},
		{
			name:  "names",
			input: "Temperature/0/value",
			want:  Path{Object: "3303", Instance: 0, Resource: "5700", ResourceInstance: -1},
		},
		{
			name:  "device names",
			input: "device/0/voltage/1",
			want:  Path{Object: "3", Instance: 0, Resource: "7", ResourceInstance: 1},
		},
		{
			name:  "leading zeros normalized",
			input: "03303/0/05700",
			want:  Path{Object: "3303", Instance: 0, Resource: "5700", ResourceInstance: -1},
		},
		{name: "empty", input: "  ", wantErr: ErrEmptyPath},
		{name: "slash only", input: "/", wantErr: ErrEmptyPath},
		{name: "double slash", input: "3303//5700", wantErr: ErrInvalidPath},
		{name: "trailing slash", input: "3303/0/", wantErr: ErrInvalidPath},
		{name: "too deep", input: "3/0/6/1/2", wantErr: ErrInvalidPath},
		{name: "unknown object name", input: "pump/0", wantErr: ErrInvalidNumber},
		{name: "bad instance", input: "3303/x", wantErr: ErrInvalidNumber},
		{name: "resource name of other object", input: "3303/0/dimmer", wantErr: ErrInvalidNumber},
		{name: "out of range", input: "70000", wantErr: ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePath(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.input, err)
			}
			got.Raw = ""
			if *got != tt.want {
				t.Errorf("ParsePath(%q) = %+v, want %+v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	for _, input := range []string{"3303", "3303/1", "3303/0/5700", "3/0/6/1"} {
		p, err := ParsePath(input)
		if err != nil {
			t.Fatalf("ParsePath(%q) error = %v", input, err)
		}
		if got := p.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}

	p, _ := ParsePath("temperature/0/value")
	if got := p.String(); got != "3303/0/5700" {
		t.Errorf("String() = %q, want numeric form", got)
	}
	if p.Raw != "temperature/0/value" {
		t.Errorf("Raw = %q", p.Raw)
	}
}

func TestPathIsPartial(t *testing.T) {
	p, _ := ParsePath("3303/0")
	if !p.IsPartial() {
		t.Error("3303/0 should be partial")
	}
	p, _ = ParsePath("3303/0/5700")
	if p.IsPartial() {
		t.Error("3303/0/5700 should not be partial")
	}
	if mp := p.ModelPath(); mp.String() != "3303/0/5700" {
		t.Errorf("ModelPath() = %s", mp)
	}
}
