package config

// DefaultImportPath is the module specifier inserted for the toast facility
// when a file has no toast import yet.
const DefaultImportPath = "../shared/utils/toast"

// defaultFiles is the compiled-in target list, used when no config file is
// present. Paths are absolute and processed in this order.
var defaultFiles = []string{
	"/Users/buntha/Documents/AI/ds-advance/components/customer/CustomerDashboard.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/customer/TrackingTimeline.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/customer/CustomerProfile.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/fixed_assets/AssetCategoryForm.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/fixed_assets/AssetForm.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/fixed_assets/FixedAssetsDashboard.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/closing/ClosingDashboard.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/UserList.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/staff/StaffLoansDashboard.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/staff/EmployeeList.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/payables/VendorList.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/wallet/WalletDashboard.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/setup/OnboardingWizard.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/LandingPage.tsx",
	"/Users/buntha/Documents/AI/ds-advance/components/banking/WalletRequests.tsx",
	"/Users/buntha/Documents/AI/ds-advance/src/app/views/JournalView.tsx",
}

// Default returns the compiled-in configuration. The returned value owns its
// own slice so callers can append without touching the package default.
func Default() *Config {
	files := make([]string, len(defaultFiles))
	copy(files, defaultFiles)

	return &Config{
		ImportPath: DefaultImportPath,
		Files:      files,
	}
}
