package logging

import (
	"errors"
	"testing"
)

func TestService(t *testing.T) {
	attr := Service("collector")
	if attr.Key != FieldService {
		t.Errorf("expected key %q, got %q", FieldService, attr.Key)
	}
	if attr.Value.String() != "collector" {
		t.Errorf("expected value %q, got %q", "collector", attr.Value.String())
	}
}

func TestEventID(t *testing.T) {
	attr := EventID("msg_001")
	if attr.Key != FieldEventID {
		t.Errorf("expected key %q, got %q", FieldEventID, attr.Key)
	}
	if attr.Value.String() != "msg_001" {
		t.Errorf("expected value %q, got %q", "msg_001", attr.Value.String())
	}
}

func TestConversationID(t *testing.T) {
	attr := ConversationID("conv_001")
	if attr.Key != FieldConversationID {
		t.Errorf("expected key %q, got %q", FieldConversationID, attr.Key)
	}
	if attr.Value.String() != "conv_001" {
		t.Errorf("expected value %q, got %q", "conv_001", attr.Value.String())
	}
}

func TestStatus(t *testing.T) {
	attr := Status(502)
	if attr.Key != FieldStatus {
		t.Errorf("expected key %q, got %q", FieldStatus, attr.Key)
	}
	if attr.Value.Int64() != 502 {
		t.Errorf("expected value 502, got %d", attr.Value.Int64())
	}
}

func TestError(t *testing.T) {
	attr := Error(errors.New("connection refused"))
	if attr.Key != FieldError {
		t.Errorf("expected key %q, got %q", FieldError, attr.Key)
	}
	if attr.Value.String() != "connection refused" {
		t.Errorf("expected value %q, got %q", "connection refused", attr.Value.String())
	}
}

func TestDuration(t *testing.T) {
	attr := Duration(4200)
	if attr.Key != FieldDuration {
		t.Errorf("expected key %q, got %q", FieldDuration, attr.Key)
	}
	if attr.Value.Int64() != 4200 {
		t.Errorf("expected value 4200, got %d", attr.Value.Int64())
	}
}
