// Package handler implements the local HTTP surface of the client.
//
// While the client runs it can expose Prometheus metrics together with a
// read-only view of the install pipeline and of the installed maps. Every
// request passes through trace-id and access-log middleware before it
// reaches the service layer.
package handler
