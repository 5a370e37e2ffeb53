// Package testsupport holds helpers shared by the package tests: temp-dir
// backed configs, ledger stores with cleanup, and fixture variants.
package testsupport
