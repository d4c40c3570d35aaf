package circuit

// HospitalNodeV2 returns the sample hospital panel used by the v2 auditor.
func HospitalNodeV2() []Circuit {
	return []Circuit{
		{Name: "ICU-Outlet-A1", Voltage: 120, Amps: 15, Phases: 1, Phase: "A", Continuous: true},
		{Name: "ICU-Outlet-B1", Voltage: 120, Amps: 15, Phases: 1, Phase: "B", Continuous: true},
		{Name: "ICU-Outlet-C1", Voltage: 120, Amps: 15, Phases: 1, Phase: "C", Continuous: true},
		{Name: "OR-Lighting", Voltage: 277, Amps: 20, Phases: 1, Phase: "A", Continuous: true},
		{Name: "Emergency-Panel", Voltage: 480, Amps: 100, Phases: 3, Continuous: true},
		{Name: "Life-Safety-Pump", Voltage: 480, Amps: 50, Phases: 3, Continuous: true},
		{Name: "General-Receptacles", Voltage: 120, Amps: 20, Phases: 1, Phase: "C", Continuous: false},
	}
}

// HospitalNodeV3 returns the sample hospital panel used by the v3 auditor.
func HospitalNodeV3() []Circuit {
	return []Circuit{
		{Name: "ICU_Outlet_Bank_A", Amps: 20.0, Voltage: 120, Phases: 1, Continuous: true, Phase: "A"},
		{Name: "ICU_Outlet_Bank_B", Amps: 20.0, Voltage: 120, Phases: 1, Continuous: true, Phase: "B"},
		{Name: "OR_Lighting_Circuit_1", Amps: 15.0, Voltage: 120, Phases: 1, Continuous: true, Phase: "A"},
		{Name: "OR_Lighting_Circuit_2", Amps: 15.0, Voltage: 120, Phases: 1, Continuous: true, Phase: "B"},
		{Name: "HVAC_Rooftop_Unit_1", Amps: 45.0, Voltage: 480, Phases: 3, Continuous: true},
		{Name: "Emergency_Panel_EP1", Amps: 100.0, Voltage: 480, Phases: 3, Continuous: true},
		{Name: "Medical_Gas_Compressor", Amps: 30.0, Voltage: 208, Phases: 3, Continuous: true},
		{Name: "Nurse_Call_System", Amps: 5.0, Voltage: 120, Phases: 1, Continuous: true, Phase: "C"},
		{Name: "General_Lighting_Wing_A", Amps: 30.0, Voltage: 277, Phases: 1, Continuous: true, Phase: "A"},
	}
}

// Sample returns a named sample schedule and whether the name is known.
// Valid names: hospital-v2, hospital-v3.
func Sample(name string) (*Schedule, bool) {
	switch name {
	case "hospital-v2":
		return &Schedule{Version: ScheduleVersion, Panel: "hospital-node-v2", Circuits: HospitalNodeV2()}, true
	case "hospital-v3":
		return &Schedule{Version: ScheduleVersion, Panel: "hospital-node-v3", Circuits: HospitalNodeV3()}, true
	}
	return nil, false
}
