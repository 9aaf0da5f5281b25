package entity

import (
	"fmt"
	"io"
)

// Customer waits for a delivery and is told the driver's current status
type Customer struct {
	Name string
	out  io.Writer
}

func NewCustomerObserver(name string, out io.Writer) *Customer {
	return &Customer{Name: name, out: out}
}

func (c *Customer) Update(driver *Driver) error {
	_, err := fmt.Fprintf(c.out, "Customer %s: %s\n", c.Name, PlainText(driver.FormatCurrentStatus()))
	return err
}
