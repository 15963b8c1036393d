package tabular

import "sort"

// SortKeys nomeia os campos da ordenação multi-nível: bucket temporal
// numérico crescente, depois categoria primária, secundária e terciária em
// ordem lexicográfica crescente.
type SortKeys struct {
	Bucket    string
	Primary   string
	Secondary string
	Tertiary  string
}

// SortRecords devolve uma cópia ordenada pela ordem total definida pelas
// chaves. A entrada nunca é modificada.
func SortRecords(records []Record, keys SortKeys) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		left, right := sorted[i], sorted[j]

		leftBucket := ParseIntOrZero(left.Get(keys.Bucket))
		rightBucket := ParseIntOrZero(right.Get(keys.Bucket))
		if leftBucket != rightBucket {
			return leftBucket < rightBucket
		}

		if left.Get(keys.Primary) != right.Get(keys.Primary) {
			return left.Get(keys.Primary) < right.Get(keys.Primary)
		}

		if left.Get(keys.Secondary) != right.Get(keys.Secondary) {
			return left.Get(keys.Secondary) < right.Get(keys.Secondary)
		}

		return left.Get(keys.Tertiary) < right.Get(keys.Tertiary)
	})

	return sorted
}

// SecondaryGroup é a folha do agrupamento: a lista de registros de uma
// categoria secundária, já na ordem total.
type SecondaryGroup struct {
	Key     string   `json:"key"`
	Records []Record `json:"records"`
}

// PrimaryGroup agrupa as categorias secundárias de uma categoria primária.
type PrimaryGroup struct {
	Key    string           `json:"key"`
	Groups []SecondaryGroup `json:"groups"`
}

// BucketGroup agrupa as categorias primárias de um bucket temporal.
type BucketGroup struct {
	Bucket int            `json:"bucket"`
	Groups []PrimaryGroup `json:"groups"`
}

// GroupRecords ordena os registros pela ordem total e constrói o agrupamento
// aninhado de três níveis (bucket → primária → secundária) para renderização
// hierárquica sem reordenação. Invariante: percorrer o agrupamento achatado
// reproduz exatamente a ordem total, ver Flatten.
func GroupRecords(records []Record, keys SortKeys) []BucketGroup {
	sorted := SortRecords(records, keys)
	groups := make([]BucketGroup, 0)

	for _, record := range sorted {
		bucket := ParseIntOrZero(record.Get(keys.Bucket))
		primary := record.Get(keys.Primary)
		secondary := record.Get(keys.Secondary)

		if len(groups) == 0 || groups[len(groups)-1].Bucket != bucket {
			groups = append(groups, BucketGroup{Bucket: bucket})
		}
		bucketGroup := &groups[len(groups)-1]

		if len(bucketGroup.Groups) == 0 || bucketGroup.Groups[len(bucketGroup.Groups)-1].Key != primary {
			bucketGroup.Groups = append(bucketGroup.Groups, PrimaryGroup{Key: primary})
		}
		primaryGroup := &bucketGroup.Groups[len(bucketGroup.Groups)-1]

		if len(primaryGroup.Groups) == 0 || primaryGroup.Groups[len(primaryGroup.Groups)-1].Key != secondary {
			primaryGroup.Groups = append(primaryGroup.Groups, SecondaryGroup{Key: secondary})
		}
		secondaryGroup := &primaryGroup.Groups[len(primaryGroup.Groups)-1]

		secondaryGroup.Records = append(secondaryGroup.Records, record)
	}

	return groups
}

// Flatten percorre o agrupamento aninhado e devolve os registros na ordem de
// travessia. Por construção, o resultado é idêntico a SortRecords sobre o
// mesmo conjunto.
func Flatten(groups []BucketGroup) []Record {
	flat := make([]Record, 0)

	for _, bucketGroup := range groups {
		for _, primaryGroup := range bucketGroup.Groups {
			for _, secondaryGroup := range primaryGroup.Groups {
				flat = append(flat, secondaryGroup.Records...)
			}
		}
	}

	return flat
}
