// Package service wires the sandbox container to the MCP protocol
// implementation.  Its central Service type loads configuration, seeds a
// sandbox instance and exposes every container operation as an MCP tool that
// can be served over an MCP server.
package service
