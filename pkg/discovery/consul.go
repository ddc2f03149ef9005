package discovery

import (
	"fmt"
	"log"

	"github.com/hashicorp/consul/api"
)

// ServiceRegistry registers this service with Consul so the gateway can
// route to it by name.
type ServiceRegistry struct {
	client    *api.Client
	serviceID string
}

func NewServiceRegistry(consulAddress string) (*ServiceRegistry, error) {
	consulConfig := api.DefaultConfig()
	consulConfig.Address = consulAddress

	client, err := api.NewClient(consulConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Consul client: %v", err)
	}
	return &ServiceRegistry{client: client}, nil
}

func (sr *ServiceRegistry) Register(serviceID, serviceName, address string, port int) error {
	registration := &api.AgentServiceRegistration{
		ID:      serviceID,
		Name:    serviceName,
		Port:    port,
		Address: address,
		Check: &api.AgentServiceCheck{
			HTTP:     fmt.Sprintf("http://%s:%d/health", address, port),
			Interval: "10s",
			Timeout:  "5s",
		},
		Tags: []string{"assessment", "http"},
		Meta: map[string]string{
			"protocol": "http",
		},
	}

	if err := sr.client.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("failed to register service with Consul: %v", err)
	}
	sr.serviceID = serviceID

	log.Printf("Registered %s with Consul as %s", serviceName, serviceID)
	return nil
}

func (sr *ServiceRegistry) Deregister() {
	if sr.serviceID == "" {
		return
	}
	if err := sr.client.Agent().ServiceDeregister(sr.serviceID); err != nil {
		log.Printf("Error deregistering service: %v", err)
	}
}
