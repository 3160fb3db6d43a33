// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Parsing a user file always follows the same three steps: compile the
// embedded schema, compile and unify the user data, then validate and decode.
//
//	//go:embed config_schema.cue
//	var schema string
//
//	result, err := cueutil.ParseAndDecodeString[map[string]any](
//	    schema,
//	    data,
//	    "#Config",
//	    cueutil.WithFilename("config.cue"),
//	)
//	if err != nil {
//	    return err // <file>: <path>: <message>
//	}
package cueutil
