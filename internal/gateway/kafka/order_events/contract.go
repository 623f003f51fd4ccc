//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_events_test
package order_events

type producer interface {
	Send(topic, key string, value []byte) error
}
