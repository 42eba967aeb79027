// SPDX-License-Identifier: EPL-2.0

// Package main provides feacat, which prints the acoustic features of an
// audio file.
//
// Usage:
//
//	feacat -c fbank.yaml [flags] FILE
//
// Features are written to stdout, as text by default or as native-endian
// float32 values with --raw-output. Diagnostics go to stderr.
//
// Exit status is 0 on success, 1 for invalid options and 2 for any failure
// while reading audio or writing features.
package main

import (
	"os"

	"github.com/dinesh-batta/AaltoASR/cmd/feacat/commands"
)

func main() {
	os.Exit(commands.Execute())
}
