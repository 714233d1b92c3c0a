package records_test

import (
	"errors"
	"testing"

	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
	"github.com/riteshgharti333/hospital-management-app-sub001/records"
)

func TestParseCursorBlankMeansBeginning(t *testing.T) {
	for _, token := range []string{"", "   ", "\t"} {
		cursor, err := records.ParseCursor(token)
		if err != nil {
			t.Errorf("token %q: unexpected error %v", token, err)
		}
		if cursor != nil {
			t.Errorf("token %q: expected nil cursor, got %d", token, *cursor)
		}
	}
}

func TestParseCursorRoundTrip(t *testing.T) {
	cursor, err := records.ParseCursor(records.CursorToken(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor == nil || *cursor != 42 {
		t.Fatalf("expected cursor 42, got %v", cursor)
	}

	// Surrounding whitespace from transport is tolerated.
	cursor, err = records.ParseCursor(" 42 ")
	if err != nil || cursor == nil || *cursor != 42 {
		t.Fatalf("whitespace-padded token rejected: %v, %v", cursor, err)
	}
}

func TestParseCursorRejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"abc", "12.5", "42x", "0x10"} {
		_, err := records.ParseCursor(token)
		if !errors.Is(err, errs.ErrBadInput) {
			t.Errorf("token %q: expected bad-input error, got %v", token, err)
		}
	}
}
