package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// check scans the directory for foreign keys that do not resolve. The portal
// tolerates dangling references by rendering placeholders; this surfaces them.
func (cli *commandLine) check() error {
	findings, err := cli.schoolSvc.CheckReferences()
	if err != nil {
		return err
	}
	if len(findings) == 0 {
		fmt.Fprintln(cli.out, "directory OK: all references resolve")
		return nil
	}
	for _, finding := range findings {
		fmt.Fprintln(cli.out, finding)
	}
	return errors.Errorf("%d dangling reference(s) found", len(findings))
}
