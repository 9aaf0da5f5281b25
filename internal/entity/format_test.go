package entity

import (
	"bytes"
	"testing"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{name: "no markup", fragment: "plain", want: "plain"},
		{name: "nested tags", fragment: "driver <b>Joe</b> is <i><b>late</b></i>", want: "driver Joe is late"},
		{name: "entities", fragment: "<b>Smith &amp; Sons</b> &lt;3", want: "Smith & Sons <3"},
		{name: "empty", fragment: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.fragment); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestDriver_FormatStatusChange_Escapes(t *testing.T) {
	driver := NewDriver("Bob <Fast> & Co", StatusAvailable)
	_ = driver.ChangeStatus(StatusEnRoute)

	want := "driver <b>Bob &lt;Fast&gt; &amp; Co</b> changed status from <i>Available</i> to <b>En Route</b>"
	if got := driver.FormatStatusChange(); got != want {
		t.Errorf("FormatStatusChange() = %q, want %q", got, want)
	}
}

func TestConsoleObservers(t *testing.T) {
	var out bytes.Buffer
	driver := NewDriver("John Doe", StatusAvailable)
	driver.Register(NewDispatchOfficeObserver(&out))
	driver.Register(NewCustomerObserver("Acme Logistics", &out))

	if err := driver.ChangeStatus(StatusEnRoute); err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}

	want := "Dispatch office: driver John Doe changed status from Available to En Route\n" +
		"Customer Acme Logistics: your driver John Doe is now En Route\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
