// Package objects provides ready-made LWM2M objects built on package helper.
//
// Each object carries its static definition table and takes its business
// logic as callbacks in its config:
//
//   - Temperature (3303): sensor value with min/max tracking. Several
//     instances share one runtime object.
//   - PowerControl (3312): on/off and dimmer writable by the server.
//   - Device (3): identity, power sources and the device clock.
//
// # Usage
//
//	client := model.NewClient(model.DefaultConfig())
//	rt := helper.NewModelRuntime(client)
//
//	indoor, err := objects.NewTemperature(objects.TemperatureConfig{
//		Runtime:  rt,
//		Instance: 0,
//		Source:   readIndoorSensor,
//	})
//	outdoor, err := objects.NewTemperature(objects.TemperatureConfig{
//		Shared:   indoor.Object(),
//		Instance: 1,
//		Source:   readOutdoorSensor,
//	})
//
//	// Refresh observable values on the application's schedule.
//	indoor.UpdateObservableResources()
package objects
