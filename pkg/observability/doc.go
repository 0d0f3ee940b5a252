/*
Package observability bridges machine lifecycle events to Prometheus.

It turns state activations, fired transitions, and hook failures into
counters, and tracks the active state as a gauge. The hooks it produces plug
straight into a machine and compose with other observers.
*/
package observability
