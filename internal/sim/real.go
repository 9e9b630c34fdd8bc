package sim

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/sweeney/rescue-rover/internal/control"
)

// DefaultTimeStepMs is assumed when the simulator does not report its basic
// time step.
const DefaultTimeStepMs = 64

// Client is the real bridge to the simulator: one TCP connection carrying
// newline-delimited JSON, one request/response exchange per tick.
type Client struct {
	conn net.Conn
	enc  *json.Encoder
	sc   *bufio.Scanner

	caps       Capabilities
	timeStepMs int
}

type initRequest struct {
	Command string   `json:"command"`
	Devices []string `json:"devices"`
}

type initResponse struct {
	Devices    map[string]bool `json:"devices"`
	TimeStepMs int             `json:"time_step_ms"`
	Error      string          `json:"error,omitempty"`
}

type stepRequest struct {
	Command   string        `json:"command"`
	Actuators wireActuators `json:"actuators"`
}

type wireActuators struct {
	LeftVelocity  float64 `json:"left_velocity"`
	RightVelocity float64 `json:"right_velocity"`
	LeftLED       bool    `json:"left_led"`
	RightLED      bool    `json:"right_led"`
}

type stepResponse struct {
	Terminated   bool                  `json:"terminated,omitempty"`
	Sensors      map[string]wireSensor `json:"sensors"`
	Acceleration []float64             `json:"acceleration"`
	Error        string                `json:"error,omitempty"`
}

type wireSensor struct {
	Distance float64      `json:"distance"`
	Objects  []wireObject `json:"objects,omitempty"`
}

type wireObject struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model,omitempty"`
}

// Dial connects to the simulator bridge and performs the device handshake.
func Dial(addr string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial simulator: %w", err)
	}

	c := &Client{
		conn: conn,
		enc:  json.NewEncoder(conn),
		sc:   bufio.NewScanner(conn),
	}
	c.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if err := c.handshake(); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) handshake() error {
	req := initRequest{
		Command: "init",
		Devices: []string{
			DeviceLeftMotor, DeviceRightMotor,
			DeviceFrontSensor, DeviceLeftSensor, DeviceRightSensor,
			DeviceAccelerometer,
			DeviceLeftLED, DeviceRightLED,
		},
	}
	if err := c.enc.Encode(req); err != nil {
		return fmt.Errorf("send init: %w", err)
	}

	var resp initResponse
	if err := c.readLine(&resp); err != nil {
		return fmt.Errorf("read init response: %w", err)
	}
	if resp.Error != "" {
		return fmt.Errorf("simulator rejected init: %s", resp.Error)
	}

	c.caps = Capabilities{
		LeftMotor:     resp.Devices[DeviceLeftMotor],
		RightMotor:    resp.Devices[DeviceRightMotor],
		FrontSensor:   resp.Devices[DeviceFrontSensor],
		LeftSensor:    resp.Devices[DeviceLeftSensor],
		RightSensor:   resp.Devices[DeviceRightSensor],
		Accelerometer: resp.Devices[DeviceAccelerometer],
		LeftLED:       resp.Devices[DeviceLeftLED],
		RightLED:      resp.Devices[DeviceRightLED],
	}
	c.timeStepMs = resp.TimeStepMs
	if c.timeStepMs <= 0 {
		c.timeStepMs = DefaultTimeStepMs
	}
	return nil
}

// Capabilities returns the devices the simulator resolved at handshake.
func (c *Client) Capabilities() Capabilities {
	return c.caps
}

// TimeStepMs returns the simulator's tick period in milliseconds.
func (c *Client) TimeStepMs() int {
	return c.timeStepMs
}

// Step sends the actuator command and blocks for the next observation.
func (c *Client) Step(cmd Actuators) (control.Observation, error) {
	req := stepRequest{
		Command: "step",
		Actuators: wireActuators{
			LeftVelocity:  cmd.LeftVelocity,
			RightVelocity: cmd.RightVelocity,
			LeftLED:       cmd.LeftLED,
			RightLED:      cmd.RightLED,
		},
	}
	if err := c.enc.Encode(req); err != nil {
		return control.Observation{}, fmt.Errorf("send step: %w", err)
	}

	var resp stepResponse
	if err := c.readLine(&resp); err != nil {
		// The simulator closing the connection is how it signals the end of
		// the run.
		if errors.Is(err, io.EOF) {
			return control.Observation{}, ErrTerminated
		}
		return control.Observation{}, fmt.Errorf("read step response: %w", err)
	}
	if resp.Terminated {
		return control.Observation{}, ErrTerminated
	}
	if resp.Error != "" {
		return control.Observation{}, fmt.Errorf("simulator step error: %s", resp.Error)
	}
	return c.observation(resp), nil
}

// Close closes the connection to the simulator.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) observation(resp stepResponse) control.Observation {
	obs := control.Observation{
		Front: sensorReading(resp.Sensors, DeviceFrontSensor, c.caps.FrontSensor),
		Left:  sensorReading(resp.Sensors, DeviceLeftSensor, c.caps.LeftSensor),
		Right: sensorReading(resp.Sensors, DeviceRightSensor, c.caps.RightSensor),
	}
	if c.caps.Accelerometer && len(resp.Acceleration) >= 3 {
		obs.AccelValid = true
		copy(obs.Accel[:], resp.Acceleration[:3])
	}
	return obs
}

func sensorReading(sensors map[string]wireSensor, name string, present bool) control.SensorReading {
	ws, ok := sensors[name]
	if !present || !ok {
		return control.SensorReading{Distance: control.NoReading}
	}

	r := control.SensorReading{Distance: ws.Distance, Valid: true}
	for _, o := range ws.Objects {
		r.Objects = append(r.Objects, control.RecognizedObject{ID: o.ID, Name: o.Name, Model: o.Model})
	}
	return r
}

func (c *Client) readLine(v interface{}) error {
	for c.sc.Scan() {
		line := bytes.TrimSpace(c.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		return json.Unmarshal(line, v)
	}
	if err := c.sc.Err(); err != nil {
		return err
	}
	return io.EOF
}
