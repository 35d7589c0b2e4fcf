package kafka

// Config holds broker connection settings shared by producers and consumers.
type Config struct {
	Brokers       []string
	ConsumerGroup string
}
