package seq

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

//Parse parses a comma delimited sequence into a tree; '(...)' and '[...]' groups
//nest arbitrarily, single and double quoted tokens may carry delimiters.
//Empty or blank input yields a zero child root.
func Parse(input string) (*Node, error) {
	root := &Node{}
	cursor := parsly.NewCursor("", []byte(input), 0)
	if err := parseSequence(cursor, root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseSequence(cursor *parsly.Cursor, parent *Node) error {
	expectElement := false
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAfterOptional(whitespaceMatcher, parenBlockMatcher, bracketBlockMatcher, singleQuotedMatcher, doubleQuotedMatcher, comaTerminatorMatcher)
		switch match.Code {
		case parenBlockToken, bracketBlockToken:
			value := match.Text(cursor)
			group := &Node{}
			groupCursor := parsly.NewCursor("", []byte(value[1:len(value)-1]), 0)
			if err := parseSequence(groupCursor, group); err != nil {
				return err
			}
			parent.append(group)
			next, err := matchSeparator(cursor)
			if err != nil {
				return err
			}
			expectElement = next
		case singleQuotedToken, doubleQuotedToken:
			value := match.Text(cursor)
			parent.append(&Node{token: value[1 : len(value)-1]})
			next, err := matchSeparator(cursor)
			if err != nil {
				return err
			}
			expectElement = next
		case comaTerminatorToken:
			value := match.Text(cursor)
			token, err := rawToken(value[:len(value)-1], cursor)
			if err != nil {
				return err
			}
			parent.append(&Node{token: token})
			expectElement = true
		default:
			text := strings.TrimSpace(string(cursor.Input[cursor.Pos:]))
			cursor.Pos = len(cursor.Input)
			if text == "" {
				continue
			}
			token, err := rawToken(text, cursor)
			if err != nil {
				return err
			}
			parent.append(&Node{token: token})
			expectElement = false
		}
	}
	if expectElement {
		return fmt.Errorf("expected element after ',' at position %v", cursor.Pos)
	}
	return nil
}

//matchSeparator consumes an element separator, it returns true when a next element is expected
func matchSeparator(cursor *parsly.Cursor) (bool, error) {
	match := cursor.MatchAfterOptional(whitespaceMatcher, comaTerminatorMatcher)
	if match.Code == comaTerminatorToken {
		text := match.Text(cursor)
		if sep := strings.TrimSpace(text[:len(text)-1]); sep != "" {
			return false, fmt.Errorf("expected ',', but had %q at position %v", sep, cursor.Pos)
		}
		return true, nil
	}
	if remaining := strings.TrimSpace(string(cursor.Input[cursor.Pos:])); remaining != "" {
		return false, fmt.Errorf("expected ',', but had %q at position %v", remaining, cursor.Pos)
	}
	cursor.Pos = len(cursor.Input)
	return false, nil
}

func rawToken(text string, cursor *parsly.Cursor) (string, error) {
	token := strings.TrimSpace(text)
	if token == "" {
		return "", fmt.Errorf("unexpected empty element at position %v", cursor.Pos)
	}
	if index := strings.IndexAny(token, `()[]'"`); index != -1 {
		return "", fmt.Errorf("unexpected %q at position %v", token[index], cursor.Pos)
	}
	return token, nil
}
