package collector

import (
	"context"
	"sync"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// DockerContainers counts running containers through the Docker Engine API.
// The client is created on first use and kept for the process lifetime.
type DockerContainers struct {
	mu  sync.Mutex
	cli *client.Client
}

func (d *DockerContainers) client() (*client.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cli != nil {
		return d.cli, nil
	}
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	d.cli = cli
	return cli, nil
}

// Running returns the number of running containers
func (d *DockerContainers) Running(ctx context.Context) (int, error) {
	cli, err := d.client()
	if err != nil {
		return 0, readErr("docker", err)
	}

	containers, err := cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return 0, readErr("docker", err)
	}
	return len(containers), nil
}

// Close releases the client, if one was created
func (d *DockerContainers) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cli == nil {
		return nil
	}
	err := d.cli.Close()
	d.cli = nil
	return err
}
