package fixtures

// ==========================================
// DEFAULT BUSINESS RULE DATA
// ==========================================

// Holidays2025 returns the Indonesian national holiday calendar for fiscal
// year 2025, keyed by YYYY-MM-DD. Callers may replace it per processing run.
func Holidays2025() map[string]string {
	return map[string]string{
		"2025-01-01": "Tahun Baru Masehi",
		"2025-01-27": "Isra Mikraj",
		"2025-01-28": "Cuti Imlek",
		"2025-01-29": "Imlek",
		"2025-03-29": "Nyepi",
		"2025-03-31": "Idul Fitri",
		"2025-04-01": "Idul Fitri",
		"2025-04-02": "Cuti Lebaran",
		"2025-04-03": "Cuti Lebaran",
		"2025-04-04": "Cuti Lebaran",
		"2025-04-18": "Jumat Agung",
		"2025-04-20": "Paskah",
		"2025-05-01": "Hari Buruh",
		"2025-05-12": "Waisak",
		"2025-05-29": "Kenaikan Isa Almasih",
		"2025-06-01": "Pancasila",
		"2025-06-06": "Idul Adha",
		"2025-06-27": "1 Muharram",
		"2025-08-17": "Kemerdekaan RI",
		"2025-09-05": "Maulid Nabi",
		"2025-12-25": "Natal",
		"2025-12-26": "Cuti Natal",
	}
}

// DefaultOfficeLocations returns the known office-location name fragments.
// A punch location containing any of them (case-insensitive) counts as
// on-site presence.
func DefaultOfficeLocations() []string {
	return []string{
		"SCIENTIA", "GADING SERPONG", "CURUG SANGERENG", "KELAPA DUA",
		"PAGEDANGAN", "MEDANG", "BINONG", "CISAUK", "LEGOK", "BSD", "SERPONG",
		"PT ITOKO SANNIN ABADI", "GLOBAL KONSULTAN", "PT. PRATAMA SOLUTION", "REGUS",
		"PT. PARAMADAKSA TEKNOLOGI NUSANTARA", "AIMAN - ANUGERAH INOVASI MANUNGGAL",
		"PT GANITRI NITSAYA HARITA", "PT VALUTAC INOVASI KREASI",
		"PRIME GLOBAL (KAP KANEL & REKAN)", "SANJAYA SOLUSINDO (PT SANJAYA SOLUSI DIGITAL INDONESIA)",
		"PT. SARAHMA GLOBAL INFORMATIKA", "TRIPROCKETS TRAVEL INDONESIA", "THE MAP CONSULTANT",
		"KESSLER EXECUTIVE SEARCH", "APP INTERNATIONAL INDONESIA", "PT WIAGA INTECH NUSANTARA",
		"PARAMADAKSA TEKNOLOGI NUSANTARA NEXSOFT",
	}
}
