// Package corpus loads definition records from YAML.
//
// The default corpus is embedded in the binary. An operator can point Lexa at
// a replacement file with the same shape:
//
//	locador: Parte que cede o imóvel.          # glossary entry
//	"art. 23":                                  # citation entry
//	  summary: Obrigações do locatário.
//	  full_text: Art. 23 - O locatário é obrigado a ...
//
// Entries keep file order.
package corpus
