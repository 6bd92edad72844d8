package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock. A later instance can dial
// the lock address to ask this one to show itself.
type InstanceGuard struct {
	listener    net.Listener
	address     string
	activations chan struct{}
}

// AcquireSingleInstance binds a localhost port derived from appName.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	guard := &InstanceGuard{
		listener:    listener,
		address:     address,
		activations: make(chan struct{}, 1),
	}
	go guard.serve()
	return guard, nil
}

// ActivateRunningInstance pokes the instance holding the lock for appName.
func ActivateRunningInstance(appName string) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), time.Second)
	if err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	return conn.Close()
}

// Activations delivers one value per activation request. It is closed on
// Release.
func (guard *InstanceGuard) Activations() <-chan struct{} {
	return guard.activations
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve() {
	defer close(guard.activations)
	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			return
		}
		_ = conn.Close()
		select {
		case guard.activations <- struct{}{}:
		default:
		}
	}
}

func instanceAddress(appName string) string {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	port := minPort + int(hash.Sum32()%uint32(rangeSize))
	return fmt.Sprintf("127.0.0.1:%d", port)
}
