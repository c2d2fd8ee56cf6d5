// Package device declares the external collaborators the partitioner
// depends on but does not implement: a routing-resource database (Device)
// and a routing request (Arc). Both are capability interfaces so that the
// partitioner core stays independent of any particular device backend;
// github.com/fpga-tools/arcpart/griddevice provides one concrete Device
// and Arc implementation for tests, benchmarks, and the CLI.
package device
