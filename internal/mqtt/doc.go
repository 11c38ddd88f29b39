// Package mqtt connects the facade to an MQTT broker.
//
// [Client] wraps the paho client: it validates publishes and subscriptions,
// restores subscriptions after a reconnect and recovers panics raised by
// message handlers. [Bridge] uses a client to feed inputs from broker topics
// and to publish every successful output write.
//
// Topics are built from a prefix and the entry name:
//
//	<input_prefix><name>   messages set the value of input <name>
//	<output_prefix><name>  every POST /<name> publishes the stored value
package mqtt
