package genai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Kind classifies a failed call to the text generation service
type Kind string

const (
	KindAuthentication Kind = "authentication"
	KindNetwork        Kind = "network"
	KindRateLimit      Kind = "rate_limit"
	KindServer         Kind = "server"
	KindResponseShape  Kind = "response_shape"
	KindUnexpected     Kind = "unexpected"
	KindUnknown        Kind = "unknown"
)

// Error is returned by the client for every failed call.
// Raw holds the upstream body or model output and is meant for logs only.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Raw        string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("genai %s error", e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (%d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify returns the kind of err. Errors not produced by the client are
// classified from their shape.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}
	if strings.Contains(err.Error(), "API key not valid") {
		return KindAuthentication
	}
	return KindUnexpected
}

// kindForStatus maps an upstream status code and message to an error kind
func kindForStatus(status int, message string) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuthentication
	case strings.Contains(message, "API key not valid"):
		return KindAuthentication
	case status == 429:
		return KindRateLimit
	case status >= 500:
		return KindServer
	default:
		return KindUnexpected
	}
}

var userMessages = map[Kind]string{
	KindAuthentication: "حدث خطأ في المصادقة. يرجى التأكد من مفتاح API الخاص بك.",
	KindNetwork:        "حدث خطأ في الشبكة. يرجى التحقق من اتصالك بالإنترنت والمحاولة مرة أخرى.",
	KindRateLimit:      "تم استلام عدد كبير جدًا من الطلبات. يرجى الانتظار قليلاً ثم المحاولة مرة أخرى.",
	KindServer:         "حدث خطأ في الخادم. يرجى المحاولة مرة أخرى لاحقًا.",
	KindResponseShape:  "لم يتمكن الذكاء الاصطناعي من تنسيق الاستجابة بشكل صحيح. يرجى محاولة تعديل سؤالك.",
	KindUnexpected:     "عذرًا، حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى لاحقًا.",
	KindUnknown:        "حدث خطأ غير معروف.",
}

// UserMessage returns the message shown to the user for kind
func UserMessage(kind Kind) string {
	if msg, ok := userMessages[kind]; ok {
		return msg
	}
	return userMessages[KindUnknown]
}
