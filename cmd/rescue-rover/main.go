// Command rescue-rover drives a simulated rescue robot over the simulator
// bridge and signals survivor detections over MQTT.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/rescue-rover/internal/control"
	"github.com/sweeney/rescue-rover/internal/led"
	"github.com/sweeney/rescue-rover/internal/radio"
	"github.com/sweeney/rescue-rover/internal/sim"
	"github.com/sweeney/rescue-rover/internal/status"
	"github.com/sweeney/rescue-rover/internal/web"
)

func main() {
	simAddr := flag.String("sim", "127.0.0.1:10021", "Simulator bridge address")
	dialTimeout := flag.Duration("dial-timeout", 10*time.Second, "Simulator connect timeout")
	broker := flag.String("broker", "tcp://127.0.0.1:1883", "MQTT broker address (empty to disable the radio)")
	channel := flag.Int("channel", radio.DefaultChannel, "Emitter channel for the survivor signal")
	httpAddr := flag.String("http", ":8080", "HTTP status address (empty to disable)")
	label := flag.String("survivor-label", control.DefaultSurvivorLabel, "Scene name that identifies survivor objects")
	ledGPIO := flag.Bool("led-gpio", false, "Mirror indicator LEDs to local GPIO lines")
	pinLeft := flag.Int("pin-left", led.DefaultPinLeft, "BCM pin number for the left indicator")
	pinRight := flag.Int("pin-right", led.DefaultPinRight, "BCM pin number for the right indicator")

	flag.Parse()

	if err := run(*simAddr, *dialTimeout, *broker, *channel, *httpAddr, *label, *ledGPIO, *pinLeft, *pinRight); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(simAddr string, dialTimeout time.Duration, broker string, channel int, httpAddr, label string, ledGPIO bool, pinLeft, pinRight int) error {
	// Connect to the simulator. The rover cannot run without its host.
	client, err := sim.Dial(simAddr, dialTimeout)
	if err != nil {
		return fmt.Errorf("connect simulator: %w", err)
	}
	defer client.Close()

	caps := client.Capabilities()
	if !caps.MotorsOK() {
		return fmt.Errorf("required wheel motors missing (left=%v right=%v)", caps.LeftMotor, caps.RightMotor)
	}
	for _, name := range caps.Missing() {
		log.Printf("warning: device %q not found, degrading", name)
	}

	// Connect the radio. A missing broker degrades: the loop runs, survivor
	// signals are skipped and logged.
	var emitter radio.Emitter
	var radioStatus radio.ConnectionStatus
	if broker != "" {
		r, err := radio.NewRealEmitter(broker, channel)
		if err != nil {
			log.Printf("warning: radio unavailable (%v); survivor signals will be skipped", err)
		} else {
			emitter = r
			radioStatus = r
			defer r.Close()
		}
	}

	// Optional local LED mirror.
	var leds led.Driver
	if ledGPIO {
		d, err := led.NewRealDriver(pinLeft, pinRight)
		if err != nil {
			log.Printf("warning: led mirror unavailable: %v", err)
		} else {
			leds = d
			defer d.Close()
		}
	}

	tracker := status.NewTracker(time.Now(), status.Config{
		SimAddr:       simAddr,
		Broker:        broker,
		Channel:       channel,
		TimeStepMs:    client.TimeStepMs(),
		HTTPAddr:      httpAddr,
		SurvivorLabel: label,
	})

	// Publish startup event with full status snapshot.
	if emitter != nil {
		snap := tracker.Snapshot()
		startupEvent := radio.SystemEvent{
			Timestamp:  snap.Now,
			Event:      "STARTUP",
			Retained:   true,
			RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
		}
		if err := emitter.PublishSystem(startupEvent); err != nil {
			log.Printf("failed to publish startup event: %v", err)
		} else {
			log.Printf("published startup event")
		}
	}

	// Start HTTP status server.
	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	log.Printf("started: sim=%s time_step=%dms broker=%s channel=%d label=%q",
		simAddr, client.TimeStepMs(), broker, channel, label)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ctrl := control.NewController(control.DefaultConfig())
	classifier := control.NameClassifier{Label: label}
	return runLoop(client, emitter, radioStatus, leds, tracker, ctrl, classifier, sigCh)
}

func runLoop(dev sim.Port, emitter radio.Emitter, radioStatus radio.ConnectionStatus, leds led.Driver, tracker *status.Tracker, ctrl *control.Controller, classifier control.Classifier, sig <-chan os.Signal) error {
	cfg := ctrl.Config()
	cmd := sim.Actuators{} // halt until the first observation arrives

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			publishShutdown(emitter, tracker, signalName(s))
			return nil
		default:
		}

		obs, err := dev.Step(cmd)
		if errors.Is(err, sim.ErrTerminated) {
			log.Printf("simulation terminated")
			publishShutdown(emitter, tracker, "SIM_TERMINATED")
			return nil
		}
		if err != nil {
			return fmt.Errorf("simulator step: %w", err)
		}

		frame := control.BuildFrame(obs, classifier, cfg)
		res := ctrl.Step(frame)

		if res.Changed {
			logTransition(res, frame)
		}

		if res.Emit {
			if emitter != nil {
				if err := emitter.Send(); err != nil {
					log.Printf("radio send error: %v", err)
					// Don't crash on publish failure; no retry either.
				} else {
					log.Printf("radio: survivor signal sent")
					if tracker != nil {
						tracker.AddSignal()
					}
				}
			} else {
				log.Printf("radio unavailable, survivor signal skipped")
			}
		}

		if leds != nil {
			if err := leds.Set(res.Lights.Left, res.Lights.Right); err != nil {
				log.Printf("led mirror error: %v", err)
			}
		}

		if tracker != nil {
			tracker.Update(res, frame)
			if radioStatus != nil {
				tracker.SetRadioConnected(radioStatus.IsConnected())
			}
		}

		if res.Tick%8 == 0 {
			log.Printf("state=%s aid=%d | F=%.2f L=%.2f R=%.2f | tilt=%v survivor=%v | speed L=%.1f R=%.1f",
				res.State, res.Timer, frame.Front, frame.Left, frame.Right,
				frame.Tilted, frame.SurvivorDetected, res.Command.Left, res.Command.Right)
		}

		cmd = sim.Actuators{
			LeftVelocity:  res.Command.Left,
			RightVelocity: res.Command.Right,
			LeftLED:       res.Lights.Left,
			RightLED:      res.Lights.Right,
		}
	}
}

func logTransition(res control.StepResult, frame control.Frame) {
	switch res.State {
	case control.StateTilted:
		log.Printf("state change: rover tilted, halting")
	case control.StateDeployingAid:
		log.Printf("state change: survivor detected by %s sensor, deploying aid", frame.DetectedBy)
	case control.StateAvoidingObstacle:
		log.Printf("state change: obstacle ahead (%.2fm), avoiding", frame.Front)
	case control.StateSearching:
		log.Printf("state change: clear, resuming search")
	}
}

func publishShutdown(emitter radio.Emitter, tracker *status.Tracker, reason string) {
	if emitter == nil {
		return
	}
	event := radio.SystemEvent{
		Timestamp: time.Now(),
		Event:     "SHUTDOWN",
		Reason:    reason,
		Retained:  true,
	}
	if tracker != nil {
		snap := tracker.Snapshot()
		event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", reason)
	}
	if err := emitter.PublishSystem(event); err != nil {
		log.Printf("failed to publish shutdown event: %v", err)
	} else {
		log.Printf("published shutdown event")
	}
}

func signalName(s os.Signal) string {
	switch s {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return "UNKNOWN"
}
