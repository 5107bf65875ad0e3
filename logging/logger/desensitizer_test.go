package logger

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stellrent/response/logging/logger/config"
)

func TestDesensitizeFieldsByKey(t *testing.T) {
	d := NewDesensitizer(config.DefaultDesensitization())
	out := d.DesensitizeFields(logrus.Fields{
		"access_token": "abc",
		"user":         "bob",
		"empty_secret": "",
		"pin_password": 1234,
	})

	if out["access_token"] != "******" {
		t.Errorf("access_token = %v", out["access_token"])
	}
	if out["user"] != "bob" {
		t.Errorf("user = %v", out["user"])
	}
	if out["empty_secret"] != "" {
		t.Errorf("empty_secret = %v", out["empty_secret"])
	}
	if out["pin_password"] != "******" {
		t.Errorf("pin_password = %v", out["pin_password"])
	}
}

func TestDesensitizeJSONBodyString(t *testing.T) {
	d := NewDesensitizer(config.DefaultDesensitization())
	out := d.DesensitizeFields(logrus.Fields{
		"body": `{"name":"bob","password":"hunter2","nested":[{"api_key":"k"}]}`,
	})

	var got map[string]any
	if err := json.Unmarshal([]byte(out["body"].(string)), &got); err != nil {
		t.Fatalf("body is no longer JSON: %v", err)
	}
	if got["name"] != "bob" || got["password"] != "******" {
		t.Errorf("unexpected body: %v", got)
	}
	nested := got["nested"].([]any)[0].(map[string]any)
	if nested["api_key"] != "******" {
		t.Errorf("nested api_key = %v", nested["api_key"])
	}
}

func TestDesensitizeStructsAndPatterns(t *testing.T) {
	cfg := config.DefaultDesensitization()
	cfg.EnableDefaultPatterns = true
	d := NewDesensitizer(cfg)

	type creds struct {
		Login  string `json:"login"`
		Secret string `json:"secret"`
	}
	out := d.DeepDesensitize(map[string]any{
		"creds": creds{Login: "bob", Secret: "s"},
		"note":  "mail me at bob@example.com",
	}).(map[string]any)

	c := out["creds"].(map[string]any)
	if c["login"] != "bob" || c["secret"] != "******" {
		t.Errorf("creds = %v", c)
	}
	if out["note"] != "mail me at ******" {
		t.Errorf("note = %v", out["note"])
	}
}

func TestDesensitizeDisabled(t *testing.T) {
	cfg := config.DefaultDesensitization()
	cfg.Enabled = false
	d := NewDesensitizer(cfg)

	fields := logrus.Fields{"password": "x"}
	if out := d.DesensitizeFields(fields); out["password"] != "x" {
		t.Errorf("password = %v", out["password"])
	}
}

func TestDesensitizeKeepsErrors(t *testing.T) {
	d := NewDesensitizer(nil)
	err := errors.New("boom")
	if out := d.DesensitizeFields(logrus.Fields{logrus.ErrorKey: err}); out[logrus.ErrorKey] != err {
		t.Errorf("error field changed: %v", out[logrus.ErrorKey])
	}
}
