package mqtt311

import "testing"

func BenchmarkPublishEncode(b *testing.B) {
	p := &Publish{Header: FixedHeader{QoS: QoS1}, TopicName: "bench/topic", PacketID: 1, Payload: []byte("benchmark payload")}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Encode()
	}
}

func BenchmarkPublishDecode(b *testing.B) {
	p := &Publish{Header: FixedHeader{QoS: QoS1}, TopicName: "bench/topic", PacketID: 1, Payload: []byte("benchmark payload")}
	encoded, err := p.Encode()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Decode(encoded)
	}
}

func BenchmarkConnectEncode(b *testing.B) {
	c := &Connect{ProtocolName: "MQTT", ProtocolLevel: 4, ClientID: "bench-client", KeepAlive: 30}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Encode()
	}
}

func BenchmarkConnectDecode(b *testing.B) {
	c := &Connect{ProtocolName: "MQTT", ProtocolLevel: 4, ClientID: "bench-client", KeepAlive: 30}
	encoded, err := c.Encode()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Decode(encoded)
	}
}
