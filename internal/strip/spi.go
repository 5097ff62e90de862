package strip

import (
	"fmt"

	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

// SPI is a write-only SPI connection. APA102 strips clock data on mode 3
// and ignore chip select, so any free bus works.
type SPI struct {
	port spi.PortCloser
	conn spi.Conn
}

// OpenSPI initializes the host drivers and opens the named SPI port at hz.
// An empty name selects the first port available.
func OpenSPI(name string, hz int64) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initializing host drivers: %w", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening spi port %q: %w", name, err)
	}
	conn, err := port.Connect(physic.Frequency(hz)*physic.Hertz, spi.Mode(3), 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connecting spi port %q: %w", name, err)
	}
	return &SPI{port: port, conn: conn}, nil
}

// Write sends p in a single transaction.
func (s *SPI) Write(p []byte) (int, error) {
	if err := s.conn.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *SPI) String() string {
	return s.conn.String()
}

// Close releases the port.
func (s *SPI) Close() error {
	return s.port.Close()
}
