package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	codec := newFlashCodec("test-key")

	tests := []struct {
		name   string
		notice Notice
	}{
		{"success message", Notice{Kind: noticeSuccess, Message: "Expense added successfully!"}},
		{"error message", Notice{Kind: noticeError, Message: "All fields are required!"}},
		{"message with odd characters", Notice{Kind: noticeError, Message: "message with | odd . characters \x00 inside"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := codec.decode(codec.encode(tt.notice))
			if !ok {
				t.Fatal("decode() rejected a freshly encoded notice")
			}
			if got != tt.notice {
				t.Errorf("decode() = %+v, want %+v", got, tt.notice)
			}
		})
	}
}

func TestFlashRejectsTampering(t *testing.T) {
	codec := newFlashCodec("test-key")
	value := codec.encode(Notice{Kind: noticeSuccess, Message: "ok"})

	tests := []struct {
		name  string
		value string
	}{
		{"no separator", "garbage"},
		{"bad base64", "!!!.!!!"},
		{"flipped payload byte", "x" + value[1:]},
		{"truncated mac", value[:len(value)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := codec.decode(tt.value); ok {
				t.Errorf("decode(%q) should be rejected", tt.value)
			}
		})
	}
}

func TestFlashRejectsForeignKey(t *testing.T) {
	value := newFlashCodec("key-one").encode(Notice{Kind: noticeSuccess, Message: "ok"})
	if _, ok := newFlashCodec("key-two").decode(value); ok {
		t.Error("a notice signed with another key should be rejected")
	}
}

func TestFlashSetAndPop(t *testing.T) {
	codec := newFlashCodec("test-key")

	rec := httptest.NewRecorder()
	codec.set(rec, Notice{Kind: noticeError, Message: "Invalid amount. Please enter a positive number."})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != flashCookieName {
		t.Fatalf("expected one %s cookie, got %v", flashCookieName, cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	popRec := httptest.NewRecorder()

	notices := codec.pop(popRec, req)
	if len(notices) != 1 {
		t.Fatalf("pop() returned %d notices, want 1", len(notices))
	}
	if notices[0].Kind != noticeError {
		t.Errorf("Kind = %q, want %q", notices[0].Kind, noticeError)
	}

	// The pop must clear the cookie so the notice renders once.
	cleared := popRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Errorf("expected clearing cookie with MaxAge -1, got %v", cleared)
	}
}

func TestFlashPopWithoutCookie(t *testing.T) {
	codec := newFlashCodec("test-key")
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if notices := codec.pop(httptest.NewRecorder(), req); notices != nil {
		t.Errorf("pop() without cookie = %v, want nil", notices)
	}
}
