// Package core contains the root service structure. It composes the
// controller with the server, registers the resource serializers and
// controls the service lifecycle - the repository connections, the signal
// handling and the gentle shutdown.
package core
