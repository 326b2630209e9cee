package command

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kmazurek/coldfront/internal/engine"
)

func TestParseDirectives(t *testing.T) {
	tests := []struct {
		input string
		want  engine.Directive
	}{
		{"escalate", engine.Escalate{}},
		{"1", engine.Escalate{}},
		{"esc", engine.Escalate{}},
		{"execute --escalate", engine.Escalate{}},
		{"sudo escalate", engine.Escalate{}},
		{"investigate", engine.Investigate{}},
		{"audit", engine.Investigate{}},
		{"contain", engine.Contain{}},
		{"con", engine.Contain{}},
		{"leak", engine.Leak{}},
		{"pub", engine.Leak{}},
		{"stand-down", engine.StandDown{}},
		{"sd", engine.StandDown{}},
		{"abort", engine.StandDown{}},
		{"decrypt -t DOC-00FF", engine.Decrypt{ID: "DOC-00FF"}},
		{"dec DOC-00FF", engine.Decrypt{ID: "DOC-00FF"}},
		{"cat doc-00ff", engine.Decrypt{ID: "DOC-00FF"}},
		{"6 SIGNAL-???", engine.Decrypt{ID: "SIGNAL-???"}},
		{"analyze DOC-1234", engine.Analyze{ID: "DOC-1234"}},
		{"check DOC-1234", engine.Analyze{ID: "DOC-1234"}},
		{"trace volkov", engine.Trace{Advisor: "volkov"}},
		{"traceroute gen volkov", engine.Trace{Advisor: "gen volkov"}},
		{"netstat intel", engine.Trace{Advisor: "intel"}},
		{"consult reyes", engine.Consult{Advisor: "reyes"}},
		{"ask the ambassador", engine.Consult{Advisor: "the ambassador"}},
		{"interrogate sokolova", engine.Interrogate{Advisor: "sokolova"}},
		{"grill military", engine.Interrogate{Advisor: "military"}},
		{"SUDO ESCALATE", engine.Escalate{}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParseMissingTarget(t *testing.T) {
	for _, input := range []string{"decrypt", "analyze -t", "trace", "consult", "interrogate", "6"} {
		_, err := Parse(input)
		var missing *MissingTargetError
		if !errors.As(err, &missing) {
			t.Errorf("Parse(%q) error = %v, want MissingTargetError", input, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	for _, input := range []string{"launch", "sudo rm -rf /", "xyzzy"} {
		_, err := Parse(input)
		var unknown *UnknownCommandError
		if !errors.As(err, &unknown) {
			t.Errorf("Parse(%q) error = %v, want UnknownCommandError", input, err)
		}
	}
}
