package patch

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/keys"
	"github.com/arthur-debert/scrpatch/pkg/script"
)

// BindAction rebinds the first AddAction(action, ...) line to token,
// switching its input device to match. The action must exist.
func BindAction(action, token string) Func {
	re := regexp.MustCompile(`(?m)^([ \t]*)AddAction\([ \t]*` + quote(action) + `[ \t]*,` +
		`(.*?EInputDevice_)(Keyboard|Mouse)(.*?,[ \t]*)(EKey__\w+_?|EMouse__\w+)(.*?\)[ \t]*)(;?[ \t]*(\{.*\})?[ \t]*)(\r?)$`)
	device := keys.Device(token)
	return func(text string) (string, error) {
		out, ok := replaceFirst(text, re, func(sub []string) string {
			return sub[1] + "AddAction(" + action + "," + sub[2] + device + sub[4] + token + sub[6] + sub[7] + sub[9]
		})
		if !ok {
			return "", errors.NotFound("AddAction(" + action + ", ...)").WithDetail("action", action)
		}
		return out, nil
	}
}

// BindKey is BindAction for a user-facing key name.
func BindKey(action, key string) (Func, error) {
	tok, err := keys.Token(key)
	if err != nil {
		return nil, err
	}
	return BindAction(action, tok), nil
}

// DisableLayoutKeybinding comments out every LayoutKeybinding block that
// contains Action(action);. Lines already commented are left alone. It is
// tolerant, and already disabled blocks are invisible to it.
func DisableLayoutKeybinding(action string) Func {
	actionRe := regexp.MustCompile(`(?m)^[ \t]*Action\([ \t]*` + quote(action) + `[ \t]*\)[ \t]*;[ \t]*\r?$`)
	return func(text string) (string, error) {
		spans, err := layoutKeybindings(text)
		if err != nil {
			return "", err
		}
		for i := len(spans) - 1; i >= 0; i-- {
			sp := spans[i]
			block := sp.Text(text)
			if !actionRe.MatchString(block) {
				continue
			}
			text = script.Splice(text, sp, commentOut(block))
		}
		return text, nil
	}
}

// layoutKeybindings returns the spans of live LayoutKeybinding("...", ...) { }
// blocks, from the keyword through the closing brace.
func layoutKeybindings(text string) ([]script.Span, error) {
	tokens := script.Tokenize(text)
	var spans []script.Span
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind != script.Ident || t.Text(text) != "LayoutKeybinding" {
			continue
		}
		j := i + 1
		for j < len(tokens) && tokens[j].Trivia() {
			j++
		}
		if j >= len(tokens) || tokens[j].Text(text) != "(" {
			continue
		}
		for j < len(tokens) && tokens[j].Kind != script.LBrace && tokens[j].Text(text) != ";" {
			j++
		}
		if j >= len(tokens) || tokens[j].Kind != script.LBrace {
			continue
		}
		closeAt, err := script.FindMatchingClose(text, tokens[j].Start)
		if err != nil {
			return nil, err
		}
		spans = append(spans, script.Span{Start: t.Start, End: closeAt + 1})
		for i+1 < len(tokens) && tokens[i+1].Start <= closeAt {
			i++
		}
	}
	return spans, nil
}

func commentOut(block string) string {
	lines := script.SplitLines(block)
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimLeft(l.Body, " \t"), "//") {
			continue
		}
		lines[i].Body = "//" + l.Body
	}
	return script.JoinLines(lines)
}
