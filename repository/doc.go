// Package repository defines the data access interfaces consumed by the
// renderer. A repository resolves the relation values of the resources, the
// renderer decides which relations to resolve and never asks twice for the
// same one. The package provides the default implementation that delegates
// to the resource own relation methods, the mockrepo subpackage contains
// the test double with call counters.
package repository
