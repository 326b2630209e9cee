// Package command maps free-form operator input to engine directives. It
// owns alias resolution and target extraction; the engine only ever sees
// fully-formed directive values.
package command

import (
	"fmt"
	"strings"

	"github.com/kmazurek/coldfront/internal/engine"
)

// UnknownCommandError reports an unrecognized verb.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("BASH: COMMAND NOT FOUND: %s.", e.Command)
}

// MissingTargetError reports a targeted verb with no usable target.
type MissingTargetError struct {
	Usage string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("ERROR: MISSING TARGET. USAGE: %s", e.Usage)
}

// Parse resolves one line of operator input to a directive. Input is assumed
// non-empty and trimmed; meta commands (help, ls, clear...) are the caller's
// business and never reach here.
func Parse(input string) (engine.Directive, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, &UnknownCommandError{Command: ""}
	}

	verb := strings.ToLower(parts[0])
	args := parts[1:]
	// "sudo" and "execute" are transparent prefixes.
	if verb == "sudo" || verb == "execute" {
		if len(args) == 0 {
			return nil, &UnknownCommandError{Command: verb}
		}
		verb = strings.ToLower(args[0])
		args = args[1:]
	}
	verb = strings.TrimPrefix(verb, "--")

	switch verb {
	case "1", "escalate", "esc":
		return engine.Escalate{}, nil
	case "2", "investigate", "inv", "audit":
		return engine.Investigate{}, nil
	case "3", "contain", "con":
		return engine.Contain{}, nil
	case "4", "leak", "pub":
		return engine.Leak{}, nil
	case "5", "stand-down", "standdown", "sd", "abort":
		return engine.StandDown{}, nil
	case "6", "decrypt", "dec", "crack", "cat":
		id, ok := documentTarget(args)
		if !ok {
			return nil, &MissingTargetError{Usage: "decrypt -t DOC-XXXX"}
		}
		return engine.Decrypt{ID: id}, nil
	case "7", "analyze", "ana", "stat", "check":
		id, ok := documentTarget(args)
		if !ok {
			return nil, &MissingTargetError{Usage: "analyze -t DOC-XXXX"}
		}
		return engine.Analyze{ID: id}, nil
	case "8", "trace", "traceroute", "netstat", "tr":
		ref, ok := advisorTarget(args)
		if !ok {
			return nil, &MissingTargetError{Usage: "trace [ADVISOR]"}
		}
		return engine.Trace{Advisor: ref}, nil
	case "consult", "ask", "advise":
		ref, ok := advisorTarget(args)
		if !ok {
			return nil, &MissingTargetError{Usage: "consult [ADVISOR]"}
		}
		return engine.Consult{Advisor: ref}, nil
	case "interrogate", "grill", "press":
		ref, ok := advisorTarget(args)
		if !ok {
			return nil, &MissingTargetError{Usage: "interrogate [ADVISOR]"}
		}
		return engine.Interrogate{Advisor: ref}, nil
	default:
		return nil, &UnknownCommandError{Command: verb}
	}
}

// documentTarget picks a DOC-/SIGNAL- prefixed token, falling back to the
// last non-flag token.
func documentTarget(args []string) (string, bool) {
	for _, a := range args {
		upper := strings.ToUpper(a)
		if strings.HasPrefix(upper, "DOC-") || strings.HasPrefix(upper, "SIGNAL-") {
			return upper, true
		}
	}
	if len(args) > 0 {
		last := args[len(args)-1]
		if !strings.HasPrefix(last, "-") {
			return strings.ToUpper(last), true
		}
	}
	return "", false
}

// advisorTarget joins the non-flag args so multi-word references
// ("gen volkov") survive.
func advisorTarget(args []string) (string, bool) {
	var words []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		words = append(words, a)
	}
	if len(words) == 0 {
		return "", false
	}
	return strings.Join(words, " "), true
}
