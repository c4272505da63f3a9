package core

// fields.go holds the header vocabulary of the source tabs.
//
// Header spellings have drifted across edits and exports of the tracker,
// so each logical field lists every spelling seen, newest first. Extend
// these lists rather than adding lookups to the parsing code.

// Column names of the country profile tab.
const (
	ColCountry      = "Country"
	ColCode         = "Code"
	ColOverallScore = "Overall Score"
)

// Column is a fixed scored column with its display label.
type Column struct {
	Label  string
	Header string
}

// DimensionColumns are the five scored dimensions, in display order.
var DimensionColumns = []Column{
	{Label: "PFM Assessments", Header: "Dim 1: PFM Assessments"},
	{Label: "Climate Risk", Header: "Dim 2: Climate Risk"},
	{Label: "Fiscal Risk Mgmt", Header: "Dim 3: Fiscal Risk Mgmt"},
	{Label: "Finance Mobilisation", Header: "Dim 4: Finance Mobilisation"},
	{Label: "Capabilities", Header: "Dim 5: Capabilities"},
}

// TechnicalAreaColumns are the ten technical areas used for cross-country
// ranking, in display order.
var TechnicalAreaColumns = []Column{
	{Label: "Climate Budget Tagging", Header: "TA 1: Climate Budget Tagging"},
	{Label: "Green Public Investment", Header: "TA 2: Green Public Investment"},
	{Label: "Fiscal Risk Analysis", Header: "TA 3: Fiscal Risk Analysis"},
	{Label: "Green Procurement", Header: "TA 4: Green Procurement"},
	{Label: "Expenditure Tracking", Header: "TA 5: Expenditure Tracking"},
	{Label: "Medium-Term Fiscal Framework", Header: "TA 6: Medium-Term Fiscal Framework"},
	{Label: "Debt Management", Header: "TA 7: Debt Management"},
	{Label: "Disaster Risk Finance", Header: "TA 8: Disaster Risk Finance"},
	{Label: "Revenue Mobilisation", Header: "TA 9: Revenue Mobilisation"},
	{Label: "Audit and Oversight", Header: "TA 10: Audit and Oversight"},
}

// Assessment tracker aliases.
var (
	AssessmentCountAliases = Aliases{
		"PEFA_Assessments",
		"#_PEFA_Assessments",
		"# PEFA Assessments",
	}
	LatestYearAliases = Aliases{
		"Latest_PEFA_Year",
		"Latest PEFA Year",
	}
	ReformPlanAliases = Aliases{
		"PFM_Reform_Plan",
		"PFM Reform Plan",
	}
	ClimateReadyAliases = Aliases{
		"Climate_PEFA",
		"Climate PEFA",
		"Climate Readiness",
	}
	OtherAssessmentsAliases = Aliases{
		"Other_PFM_Climate_Finance_Assessments",
		"Other PFM & Climate Finance Assessments",
	}
	LatestActivitiesAliases = Aliases{
		"Latest_PFM_Activities",
		"Latest PFM Activities (PFTAC Country Workplans FY 25/26)",
		"Latest PFM Activities",
	}
	ReportLinkAliases = Aliases{
		"PEFA_Report",
		"PEFA_Report_Portal_Link",
		"PEFA Report/Portal Link",
		"PEFA Link",
		"Report URL",
	}
)

// Good practice catalog aliases.
var (
	PracticeAreaAliases = Aliases{
		"Practice_Area",
		"Practice Area",
	}
	DescriptionAliases   = Aliases{"Description"}
	ReplicabilityAliases = Aliases{"Replicability"}
)

// Dashboard summary tab columns.
var (
	MetricAliases = Aliases{"Metric"}
	ValueAliases  = Aliases{"Value"}
)
