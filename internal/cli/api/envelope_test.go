package api

import (
	"encoding/json"
	"testing"
)

func TestResult_CodeClassification(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
		msg  string
	}{
		{
			name: "numeric success code",
			body: `{"code":1,"msg":"","data":"abc.def.ghi"}`,
			ok:   true,
		},
		{
			name: "string success code coerces numerically",
			body: `{"code":"1","msg":"","data":"abc.def.ghi"}`,
			ok:   true,
		},
		{
			name: "zero code is business failure",
			body: `{"code":0,"msg":"wrong password","data":null}`,
			ok:   false,
			msg:  "wrong password",
		},
		{
			name: "other codes are failures too",
			body: `{"code":403,"msg":"forbidden","data":null}`,
			ok:   false,
			msg:  "forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result Result[string]
			if err := json.Unmarshal([]byte(tt.body), &result); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			if result.OK() != tt.ok {
				t.Errorf("OK() = %v, want %v", result.OK(), tt.ok)
			}
			if tt.msg != "" && result.Msg != tt.msg {
				t.Errorf("Msg = %q, want %q", result.Msg, tt.msg)
			}
		})
	}
}

func TestResult_PayloadPassedThrough(t *testing.T) {
	var result Result[string]
	err := json.Unmarshal([]byte(`{"code":1,"msg":"","data":"abc.def.ghi"}`), &result)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if result.Data != "abc.def.ghi" {
		t.Errorf("Data = %q, want %q", result.Data, "abc.def.ghi")
	}
}

func TestCode_RejectsNonNumeric(t *testing.T) {
	var result Result[string]
	err := json.Unmarshal([]byte(`{"code":"ok","msg":"","data":""}`), &result)
	if err == nil {
		t.Fatal("expected error for non-numeric code")
	}
}

func TestCode_MissingCodeIsNeverSuccess(t *testing.T) {
	var result Result[string]
	if err := json.Unmarshal([]byte(`{"msg":"","data":"x"}`), &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if result.OK() {
		t.Error("absent code must not classify as success")
	}
}
