// Package influxdb exports facade values to an InfluxDB v2 bucket.
//
// Every successful output write becomes an "io_output" point and the input
// sampler writes "io_input" points. Both carry the entry name as the "name"
// tag. Numeric values (including numeric strings) are stored in the "value"
// field, anything else in the "text" field. Points are only ever written;
// nothing is read back.
package influxdb
