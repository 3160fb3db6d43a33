// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the porter command line.
//
// Every command is built by a constructor taking the *App composition root, so
// tests can swap the config provider, filesystem, environment and output
// writers without touching package state.
package cmd
