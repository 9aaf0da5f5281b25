package entity

import (
	"fmt"
	"io"
)

// DispatchOffice prints every status change to the dispatch console
type DispatchOffice struct {
	out io.Writer
}

func NewDispatchOfficeObserver(out io.Writer) *DispatchOffice {
	return &DispatchOffice{out: out}
}

func (o *DispatchOffice) Update(driver *Driver) error {
	_, err := fmt.Fprintf(o.out, "Dispatch office: %s\n", PlainText(driver.FormatStatusChange()))
	return err
}
