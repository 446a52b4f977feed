// Code generated by hand for testing. DO NOT EDIT.

package options

import "os"

type Generated struct {
	f *os.File
}

func (g *Generated) Open(name string) (err error) {
	g.f, err = os.Open(name)

	return err
}
