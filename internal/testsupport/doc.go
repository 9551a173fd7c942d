// Package testsupport provides git fixtures and executor stubs shared by package tests.
package testsupport
