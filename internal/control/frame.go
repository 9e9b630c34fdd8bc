package control

import "math"

// BuildFrame aggregates one tick's device readings into a Frame.
//
// Survivor scan: sensors are visited front, left, right; within a sensor the
// recognition list is scanned in order. The first object the classifier
// accepts on a sensor reading closer than cfg.SurvivorRange wins and the
// scan stops; there is no ranking among simultaneous candidates.
func BuildFrame(obs Observation, c Classifier, cfg Config) Frame {
	f := Frame{
		Front: distanceOf(obs.Front),
		Left:  distanceOf(obs.Left),
		Right: distanceOf(obs.Right),
	}

	if c != nil {
		readings := []struct {
			name    string
			reading SensorReading
		}{
			{"front", obs.Front},
			{"left", obs.Left},
			{"right", obs.Right},
		}
	scan:
		for _, s := range readings {
			if !s.reading.Valid {
				continue
			}
			for _, obj := range s.reading.Objects {
				if c.IsSurvivor(obj) && s.reading.Distance < cfg.SurvivorRange {
					f.SurvivorDetected = true
					f.DetectedBy = s.name
					break scan
				}
			}
		}
	}

	if obs.AccelValid {
		if math.Abs(obs.Accel[0]) > cfg.TiltThreshold || math.Abs(obs.Accel[1]) > cfg.TiltThreshold {
			f.Tilted = true
		}
	}

	return f
}

func distanceOf(r SensorReading) float64 {
	if !r.Valid {
		return NoReading
	}
	return r.Distance
}
