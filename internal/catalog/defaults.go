// Package catalog supplies the read-only equipment catalogs the sizing
// engine selects from. Catalogs are plain data: the built-in set below can be
// replaced wholesale by loading a YAML catalog file, and the engine never
// writes to either.
package catalog

import "github.com/besskit/bess-calculator/internal/domain"

// Default returns the built-in equipment catalog. Callers receive a fresh
// copy of the top-level struct sharing the underlying entry slices; entries
// are treated as immutable everywhere.
func Default() *domain.Catalog {
	return &domain.Catalog{
		Batteries:    defaultBatteries,
		PCS:          defaultPCS,
		Transformers: defaultTransformers,
		Switchgear:   defaultSwitchgear,
		ACCabinets:   defaultACCabinets,
		EMS:          defaultEMS,
		Containers:   defaultContainers,
		Cables:       defaultCables,
		FireSystems:  defaultFireSystems,
	}
}

var defaultBatteries = []domain.BatteryModel{
	{ID: "BESS-1000", CapacityKWh: 1000, CostPerKWh: 450, WeightKg: 8000, Dimensions: "2.4x1.2x2.3m", Chemistry: "LFP", CycleLife: 6000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-2000", CapacityKWh: 2000, CostPerKWh: 430, WeightKg: 15000, Dimensions: "2.4x2.4x2.3m", Chemistry: "LFP", CycleLife: 6000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-3000", CapacityKWh: 3000, CostPerKWh: 420, WeightKg: 22000, Dimensions: "6.0x1.2x2.3m", Chemistry: "LFP", CycleLife: 6000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-3727", CapacityKWh: 3727.36, CostPerKWh: 410, WeightKg: 27000, Dimensions: "6.0x1.5x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-4000", CapacityKWh: 4000, CostPerKWh: 405, WeightKg: 29000, Dimensions: "6.0x1.6x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-5016", CapacityKWh: 5015.9, CostPerKWh: 400, WeightKg: 36000, Dimensions: "6.0x2.0x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-6000", CapacityKWh: 6000, CostPerKWh: 395, WeightKg: 42000, Dimensions: "6.0x2.4x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-7000", CapacityKWh: 7000, CostPerKWh: 390, WeightKg: 48000, Dimensions: "6.0x2.8x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-8000", CapacityKWh: 8000, CostPerKWh: 385, WeightKg: 54000, Dimensions: "6.0x3.2x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-9000", CapacityKWh: 9000, CostPerKWh: 380, WeightKg: 60000, Dimensions: "12.0x2.4x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-10000", CapacityKWh: 10000, CostPerKWh: 375, WeightKg: 66000, Dimensions: "12.0x2.4x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-12000", CapacityKWh: 12000, CostPerKWh: 370, WeightKg: 78000, Dimensions: "12.0x2.9x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-15000", CapacityKWh: 15000, CostPerKWh: 365, WeightKg: 96000, Dimensions: "12.0x3.6x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
	{ID: "BESS-20000", CapacityKWh: 20000, CostPerKWh: 360, WeightKg: 126000, Dimensions: "12.0x4.8x2.3m", Chemistry: "NMC", CycleLife: 5000, WarrantyYears: 10, OperatingTemp: "-20C to 60C"},
}

var defaultPCS = []domain.PCSModel{
	{ID: "PCS-1.25MW", PowerMW: 1.25, Cost: 125000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "1.2x0.8x2.0m", WeightKg: 1200, Cooling: "Air"},
	{ID: "PCS-1.5MW", PowerMW: 1.5, Cost: 140000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "1.2x0.8x2.0m", WeightKg: 1300, Cooling: "Air"},
	{ID: "PCS-1.75MW", PowerMW: 1.75, Cost: 155000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "1.5x0.9x2.0m", WeightKg: 1500, Cooling: "Air"},
	{ID: "PCS-2MW", PowerMW: 2.0, Cost: 170000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "1.5x0.9x2.0m", WeightKg: 1600, Cooling: "Air"},
	{ID: "PCS-2.5MW", PowerMW: 2.5, Cost: 200000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "1.8x1.0x2.2m", WeightKg: 1800, Cooling: "Liquid"},
	{ID: "PCS-3MW", PowerMW: 3.0, Cost: 230000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "1.8x1.0x2.2m", WeightKg: 2000, Cooling: "Liquid"},
	{ID: "PCS-3.5MW", PowerMW: 3.5, Cost: 260000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "2.0x1.2x2.2m", WeightKg: 2200, Cooling: "Liquid"},
	{ID: "PCS-4MW", PowerMW: 4.0, Cost: 290000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "2.0x1.2x2.2m", WeightKg: 2400, Cooling: "Liquid"},
	{ID: "PCS-5MW", PowerMW: 5.0, Cost: 350000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "2.4x1.4x2.2m", WeightKg: 2800, Cooling: "Liquid"},
	{ID: "PCS-6MW", PowerMW: 6.0, Cost: 410000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "2.4x1.4x2.2m", WeightKg: 3200, Cooling: "Liquid"},
	{ID: "PCS-7MW", PowerMW: 7.0, Cost: 470000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "2.8x1.6x2.2m", WeightKg: 3600, Cooling: "Liquid"},
	{ID: "PCS-8MW", PowerMW: 8.0, Cost: 530000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "2.8x1.6x2.2m", WeightKg: 4000, Cooling: "Liquid"},
	{ID: "PCS-10MW", PowerMW: 10.0, Cost: 650000, Efficiency: 0.98, VoltageKV: 0.69, Dimensions: "3.2x1.8x2.2m", WeightKg: 4800, Cooling: "Liquid"},
}

var defaultTransformers = []domain.TransformerModel{
	{ID: "TX-1.25MVA", PowerMVA: 1.25, Cost: 45000, Type: domain.TransformerDry, Dimensions: "1.5x1.0x1.8m", WeightKg: 1800, LossesPercent: 1.2, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-1.5MVA", PowerMVA: 1.5, Cost: 52000, Type: domain.TransformerDry, Dimensions: "1.6x1.1x1.8m", WeightKg: 2000, LossesPercent: 1.3, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-1.75MVA", PowerMVA: 1.75, Cost: 59000, Type: domain.TransformerDry, Dimensions: "1.7x1.2x1.8m", WeightKg: 2200, LossesPercent: 1.4, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-2MVA", PowerMVA: 2.0, Cost: 65000, Type: domain.TransformerDry, Dimensions: "1.8x1.3x1.8m", WeightKg: 2400, LossesPercent: 1.5, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-2.5MVA", PowerMVA: 2.5, Cost: 75000, Type: domain.TransformerDry, Dimensions: "2.0x1.4x1.8m", WeightKg: 2800, LossesPercent: 1.6, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-3MVA", PowerMVA: 3.0, Cost: 85000, Type: domain.TransformerDry, Dimensions: "2.2x1.5x1.8m", WeightKg: 3200, LossesPercent: 1.7, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-3.5MVA", PowerMVA: 3.5, Cost: 95000, Type: domain.TransformerDry, Dimensions: "2.4x1.6x1.8m", WeightKg: 3600, LossesPercent: 1.8, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-4MVA", PowerMVA: 4.0, Cost: 105000, Type: domain.TransformerDry, Dimensions: "2.6x1.7x1.8m", WeightKg: 4000, LossesPercent: 1.9, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-5MVA", PowerMVA: 5.0, Cost: 125000, Type: domain.TransformerDry, Dimensions: "2.8x1.8x1.8m", WeightKg: 4500, LossesPercent: 2.0, ImpedancePercent: 6.0, Mounting: domain.MountPad},
	{ID: "TX-6MVA", PowerMVA: 6.0, Cost: 145000, Type: domain.TransformerOil, Dimensions: "3.0x2.0x2.0m", WeightKg: 5000, LossesPercent: 2.1, ImpedancePercent: 6.5, Mounting: domain.MountPad},
	{ID: "TX-7MVA", PowerMVA: 7.0, Cost: 165000, Type: domain.TransformerOil, Dimensions: "3.2x2.2x2.0m", WeightKg: 5500, LossesPercent: 2.2, ImpedancePercent: 6.5, Mounting: domain.MountPad},
	{ID: "TX-8MVA", PowerMVA: 8.0, Cost: 185000, Type: domain.TransformerOil, Dimensions: "3.4x2.4x2.0m", WeightKg: 6000, LossesPercent: 2.3, ImpedancePercent: 6.5, Mounting: domain.MountPad},
	{ID: "TX-10MVA", PowerMVA: 10.0, Cost: 220000, Type: domain.TransformerOil, Dimensions: "3.6x2.6x2.0m", WeightKg: 7000, LossesPercent: 2.5, ImpedancePercent: 6.5, Mounting: domain.MountPad},
	{ID: "TX-12MVA", PowerMVA: 12.0, Cost: 250000, Type: domain.TransformerOil, Dimensions: "3.8x2.8x2.0m", WeightKg: 8000, LossesPercent: 2.7, ImpedancePercent: 6.5, Mounting: domain.MountPad},
	{ID: "TX-15MVA", PowerMVA: 15.0, Cost: 300000, Type: domain.TransformerOil, Dimensions: "4.0x3.0x2.2m", WeightKg: 9500, LossesPercent: 3.0, ImpedancePercent: 6.5, Mounting: domain.MountPad},
}

var defaultSwitchgear = []domain.SwitchgearModel{
	{ID: "SG-0.4kV-ACB", VoltageKV: 0.4, Cost: 15000, Type: "ACB", CurrentRatingA: 4000, BreakingCapacityKA: 65, Dimensions: "0.8x0.6x2.2m", WeightKg: 600},
	{ID: "SG-0.69kV-ACB", VoltageKV: 0.69, Cost: 18000, Type: "ACB", CurrentRatingA: 3200, BreakingCapacityKA: 65, Dimensions: "0.8x0.6x2.2m", WeightKg: 650},
	{ID: "SG-11kV-RMU", VoltageKV: 11, Cost: 35000, Type: "RMU", CurrentRatingA: 630, BreakingCapacityKA: 25, Dimensions: "1.5x1.0x2.0m", WeightKg: 1200},
	{ID: "SG-33kV-RMU", VoltageKV: 33, Cost: 75000, Type: "RMU", CurrentRatingA: 630, BreakingCapacityKA: 25, Dimensions: "2.0x1.2x2.5m", WeightKg: 2000},
	{ID: "SG-132kV-GIS", VoltageKV: 132, Cost: 250000, Type: "GIS", CurrentRatingA: 2000, BreakingCapacityKA: 40, Dimensions: "4.0x3.0x4.0m", WeightKg: 8000},
}

var defaultACCabinets = []domain.ACCabinetModel{
	{ID: "AC-CAB-S", Size: "Small", Cost: 10000, CapacityUnits: 2, Dimensions: "2.0x1.0x2.2m", WeightKg: 800},
	{ID: "AC-CAB-M", Size: "Medium", Cost: 15000, CapacityUnits: 4, Dimensions: "3.0x1.2x2.2m", WeightKg: 1200},
	{ID: "AC-CAB-L", Size: "Large", Cost: 20000, CapacityUnits: 6, Dimensions: "4.0x1.4x2.2m", WeightKg: 1600},
}

var defaultEMS = []domain.EMSModel{
	{ID: "EMS-BASIC", Tier: domain.EMSTierBase, Cost: 50000, Features: "Monitoring, Basic Control", Hardware: "Industrial PC", Software: "Web-based Interface", Compatibility: "Modbus TCP/IP, DNP3"},
	{ID: "EMS-ADV", Tier: domain.EMSTierMid, Cost: 100000, Features: "Monitoring, Control, Forecasting", Hardware: "Redundant Servers", Software: "Advanced Analytics", Compatibility: "Modbus TCP/IP, DNP3, IEC 61850"},
	{ID: "EMS-PRO", Tier: domain.EMSTierTop, Cost: 200000, Features: "Full SCADA, AI Forecasting, Grid Services", Hardware: "High Availability Cluster", Software: "AI-Powered Platform", Compatibility: "Modbus TCP/IP, DNP3, IEC 61850, OPC UA"},
}

var defaultContainers = []domain.ContainerModel{
	{ID: "CONT-20FT", Size: "20ft", Cost: 25000, CapacityKWh: 4000, Dimensions: "6.1x2.4x2.6m", WeightKg: 3000, Insulation: "Standard", Cooling: "Air Conditioning"},
	{ID: "CONT-40FT", Size: "40ft", Cost: 40000, CapacityKWh: 8000, Dimensions: "12.2x2.4x2.6m", WeightKg: 5000, Insulation: "Enhanced", Cooling: "Air Conditioning"},
	{ID: "CONT-40FT-HC", Size: "40ft High Cube", Cost: 45000, CapacityKWh: 10000, Dimensions: "12.2x2.4x2.9m", WeightKg: 5500, Insulation: "Enhanced", Cooling: "Air Conditioning"},
	{ID: "CONT-CUSTOM", Size: "Custom", Cost: 60000, CapacityKWh: 15000, Dimensions: "Custom", WeightKg: 7000, Insulation: "Premium", Cooling: "Liquid Cooling", Custom: true},
}

var defaultCables = []domain.CableModel{
	{ID: "CAB-LV", Type: "Low Voltage", CostPerM: 150, CurrentRatingA: 400, VoltageRatingKV: 1, Insulation: "XLPE"},
	{ID: "CAB-MV", Type: "Medium Voltage", CostPerM: 300, CurrentRatingA: 630, VoltageRatingKV: 36, Insulation: "XLPE"},
	{ID: "CAB-HV", Type: "High Voltage", CostPerM: 600, CurrentRatingA: 1200, VoltageRatingKV: 132, Insulation: "XLPE"},
}

var defaultFireSystems = []domain.FireSystemModel{
	{ID: "FIRE-AFSS", Type: "Aerosol Fire Suppression", Cost: 20000, Coverage: "100m2", Standards: "NFPA, UL"},
	{ID: "FIRE-FM200", Type: "FM-200 Gas System", Cost: 35000, Coverage: "200m2", Standards: "NFPA, UL"},
	{ID: "FIRE-WATER", Type: "Water Mist System", Cost: 25000, Coverage: "150m2", Standards: "NFPA, UL"},
}
