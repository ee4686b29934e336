package recalculate_ratings

// Response модель результата пересчета рейтингов
type Response struct {
	// CentersUpdated количество центров, для которых агрегат был
	// записан заново
	CentersUpdated int
}
