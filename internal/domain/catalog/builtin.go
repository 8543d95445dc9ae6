package catalog

// builtinParameters is the static standard parameter table. Keys are the
// normalized identifiers used to deduplicate extracted test names.
var builtinParameters = []Parameter{
	// Hematology
	{Key: "hemoglobin", DisplayName: "Hemoglobin", Unit: "g/dL", ReferenceRange: "13.5-17.5", Category: CategoryHematology},
	{Key: "hematocrit", DisplayName: "Hematocrit", Unit: "%", ReferenceRange: "41-53", Category: CategoryHematology},
	{Key: "red_blood_cells", DisplayName: "Red Blood Cells", Unit: "10^6/uL", ReferenceRange: "4.5-5.9", Category: CategoryHematology},
	{Key: "white_blood_cells", DisplayName: "White Blood Cells", Unit: "10^3/uL", ReferenceRange: "4.0-11.0", Category: CategoryHematology},
	{Key: "platelets", DisplayName: "Platelets", Unit: "10^3/uL", ReferenceRange: "150-400", Category: CategoryHematology},
	{Key: "mcv", DisplayName: "Mean Corpuscular Volume", Unit: "fL", ReferenceRange: "80-100", Category: CategoryHematology},
	{Key: "mch", DisplayName: "Mean Corpuscular Hemoglobin", Unit: "pg", ReferenceRange: "27-33", Category: CategoryHematology},
	{Key: "mchc", DisplayName: "Mean Corpuscular Hemoglobin Concentration", Unit: "g/dL", ReferenceRange: "32-36", Category: CategoryHematology},
	{Key: "neutrophils", DisplayName: "Neutrophils", Unit: "%", ReferenceRange: "40-70", Category: CategoryHematology},
	{Key: "lymphocytes", DisplayName: "Lymphocytes", Unit: "%", ReferenceRange: "20-40", Category: CategoryHematology},
	{Key: "monocytes", DisplayName: "Monocytes", Unit: "%", ReferenceRange: "2-8", Category: CategoryHematology},
	{Key: "eosinophils", DisplayName: "Eosinophils", Unit: "%", ReferenceRange: "1-4", Category: CategoryHematology},
	{Key: "basophils", DisplayName: "Basophils", Unit: "%", ReferenceRange: "0-1", Category: CategoryHematology},
	{Key: "esr", DisplayName: "Erythrocyte Sedimentation Rate", Unit: "mm/h", ReferenceRange: "0-15", Category: CategoryHematology},

	// Biochemistry
	{Key: "glucose", DisplayName: "Glucose", Unit: "mg/dL", ReferenceRange: "70-100", Category: CategoryBiochemistry},
	{Key: "hba1c", DisplayName: "Hemoglobin A1c", Unit: "%", ReferenceRange: "4.0-5.6", Category: CategoryBiochemistry},
	{Key: "creatinine", DisplayName: "Creatinine", Unit: "mg/dL", ReferenceRange: "0.7-1.3", Category: CategoryBiochemistry},
	{Key: "urea", DisplayName: "Urea", Unit: "mg/dL", ReferenceRange: "17-43", Category: CategoryBiochemistry},
	{Key: "uric_acid", DisplayName: "Uric Acid", Unit: "mg/dL", ReferenceRange: "3.5-7.2", Category: CategoryBiochemistry},
	{Key: "alt", DisplayName: "Alanine Aminotransferase", Unit: "U/L", ReferenceRange: "7-56", Category: CategoryBiochemistry},
	{Key: "ast", DisplayName: "Aspartate Aminotransferase", Unit: "U/L", ReferenceRange: "10-40", Category: CategoryBiochemistry},
	{Key: "ggt", DisplayName: "Gamma-Glutamyl Transferase", Unit: "U/L", ReferenceRange: "8-61", Category: CategoryBiochemistry},
	{Key: "alp", DisplayName: "Alkaline Phosphatase", Unit: "U/L", ReferenceRange: "40-129", Category: CategoryBiochemistry},
	{Key: "bilirubin_total", DisplayName: "Total Bilirubin", Unit: "mg/dL", ReferenceRange: "0.1-1.2", Category: CategoryBiochemistry},
	{Key: "bilirubin_direct", DisplayName: "Direct Bilirubin", Unit: "mg/dL", ReferenceRange: "0.0-0.3", Category: CategoryBiochemistry},
	{Key: "total_protein", DisplayName: "Total Protein", Unit: "g/dL", ReferenceRange: "6.0-8.3", Category: CategoryBiochemistry},
	{Key: "albumin", DisplayName: "Albumin", Unit: "g/dL", ReferenceRange: "3.5-5.0", Category: CategoryBiochemistry},
	{Key: "sodium", DisplayName: "Sodium", Unit: "mmol/L", ReferenceRange: "136-145", Category: CategoryBiochemistry},
	{Key: "potassium", DisplayName: "Potassium", Unit: "mmol/L", ReferenceRange: "3.5-5.1", Category: CategoryBiochemistry},
	{Key: "chloride", DisplayName: "Chloride", Unit: "mmol/L", ReferenceRange: "98-107", Category: CategoryBiochemistry},
	{Key: "calcium", DisplayName: "Calcium", Unit: "mg/dL", ReferenceRange: "8.6-10.2", Category: CategoryBiochemistry},
	{Key: "magnesium", DisplayName: "Magnesium", Unit: "mg/dL", ReferenceRange: "1.7-2.2", Category: CategoryBiochemistry},
	{Key: "phosphorus", DisplayName: "Phosphorus", Unit: "mg/dL", ReferenceRange: "2.5-4.5", Category: CategoryBiochemistry},
	{Key: "iron", DisplayName: "Iron", Unit: "ug/dL", ReferenceRange: "60-170", Category: CategoryBiochemistry},
	{Key: "ferritin", DisplayName: "Ferritin", Unit: "ng/mL", ReferenceRange: "20-250", Category: CategoryBiochemistry},
	{Key: "transferrin", DisplayName: "Transferrin", Unit: "mg/dL", ReferenceRange: "200-360", Category: CategoryBiochemistry},

	// Lipids
	{Key: "total_cholesterol", DisplayName: "Total Cholesterol", Unit: "mg/dL", ReferenceRange: "<200", Category: CategoryLipids},
	{Key: "ldl_cholesterol", DisplayName: "LDL Cholesterol", Unit: "mg/dL", ReferenceRange: "<130", Category: CategoryLipids},
	{Key: "hdl_cholesterol", DisplayName: "HDL Cholesterol", Unit: "mg/dL", ReferenceRange: ">40", Category: CategoryLipids},
	{Key: "triglycerides", DisplayName: "Triglycerides", Unit: "mg/dL", ReferenceRange: "<150", Category: CategoryLipids},

	// Hormones
	{Key: "tsh", DisplayName: "Thyroid Stimulating Hormone", Unit: "mIU/L", ReferenceRange: "0.4-4.0", Category: CategoryHormones},
	{Key: "ft3", DisplayName: "Free Triiodothyronine", Unit: "pg/mL", ReferenceRange: "2.3-4.2", Category: CategoryHormones},
	{Key: "ft4", DisplayName: "Free Thyroxine", Unit: "ng/dL", ReferenceRange: "0.8-1.8", Category: CategoryHormones},
	{Key: "cortisol", DisplayName: "Cortisol", Unit: "ug/dL", ReferenceRange: "6.2-19.4", Category: CategoryHormones},
	{Key: "testosterone", DisplayName: "Testosterone", Unit: "ng/dL", ReferenceRange: "280-1100", Category: CategoryHormones},
	{Key: "insulin", DisplayName: "Insulin", Unit: "uIU/mL", ReferenceRange: "2.6-24.9", Category: CategoryHormones},

	// Vitamins
	{Key: "vitamin_d", DisplayName: "Vitamin D", Unit: "ng/mL", ReferenceRange: "30-100", Category: CategoryVitamins},
	{Key: "vitamin_b12", DisplayName: "Vitamin B12", Unit: "pg/mL", ReferenceRange: "200-900", Category: CategoryVitamins},
	{Key: "folate", DisplayName: "Folate", Unit: "ng/mL", ReferenceRange: "2.7-17.0", Category: CategoryVitamins},

	// Immunology
	{Key: "crp", DisplayName: "C-Reactive Protein", Unit: "mg/L", ReferenceRange: "<5", Category: CategoryImmunology},
	{Key: "rheumatoid_factor", DisplayName: "Rheumatoid Factor", Unit: "IU/mL", ReferenceRange: "<14", Category: CategoryImmunology},
	{Key: "ana", DisplayName: "Antinuclear Antibodies", ReferenceRange: "negative", Category: CategoryImmunology},

	// Urine
	{Key: "urine_ph", DisplayName: "Urine pH", ReferenceRange: "4.5-8.0", Category: CategoryUrine},
	{Key: "urine_protein", DisplayName: "Urine Protein", Unit: "mg/dL", ReferenceRange: "negative", Category: CategoryUrine},
	{Key: "urine_glucose", DisplayName: "Urine Glucose", Unit: "mg/dL", ReferenceRange: "negative", Category: CategoryUrine},
	{Key: "microalbumin", DisplayName: "Microalbumin", Unit: "mg/L", ReferenceRange: "<30", Category: CategoryUrine},
}
