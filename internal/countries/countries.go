// Package countries holds the fixed enumeration of country names accepted
// on client records and a case/diacritic-insensitive lookup over it.
package countries

import "github.com/trekvision/crm-server/internal/utils"

// All lists every accepted country name in canonical casing. The list is
// static; records store exactly one of these strings.
var All = []string{
	"Afeganistão", "África do Sul", "Albânia", "Alemanha", "Andorra", "Angola", "Antígua e Barbuda", "Arábia Saudita", "Argélia", "Argentina", "Armênia", "Austrália", "Áustria", "Azerbaijão",
	"Bahamas", "Bahrein", "Bangladesh", "Barbados", "Belarus", "Bélgica", "Belize", "Benin", "Bolívia", "Bósnia e Herzegovina", "Botsuana", "Brasil", "Brunei", "Bulgária", "Burkina Faso", "Burundi",
	"Cabo Verde", "Camarões", "Camboja", "Canadá", "Catar", "Cazaquistão", "Chade", "Chile", "China", "Chipre", "Colômbia", "Comores", "Congo", "Coreia do Norte", "Coreia do Sul", "Costa do Marfim", "Costa Rica", "Croácia", "Cuba",
	"Dinamarca", "Djibuti", "Dominica", "República Dominicana",
	"Egito", "El Salvador", "Emirados Árabes Unidos", "Equador", "Eritreia", "Eslováquia", "Eslovênia", "Espanha", "Estados Unidos", "Estônia", "Eswatini (Suazilândia)", "Etiópia",
	"Fiji", "Filipinas", "Finlândia", "França",
	"Gabão", "Gâmbia", "Gana", "Geórgia", "Granada", "Grécia", "Guatemala", "Guiana", "Guiné", "Guiné-Bissau", "Guiné Equatorial",
	"Haiti", "Honduras", "Hungria",
	"Iêmen", "Ilhas Marshall", "Índia", "Indonésia", "Irã", "Iraque", "Irlanda", "Islândia", "Israel", "Itália",
	"Jamaica", "Japão", "Jordânia",
	"Kiribati", "Kosovo", "Kuwait",
	"Laos", "Lesoto", "Letônia", "Líbano", "Libéria", "Líbia", "Liechtenstein", "Lituânia", "Luxemburgo",
	"Madagascar", "Malásia", "Malawi", "Maldivas", "Mali", "Malta", "Marrocos", "Maurício", "Mauritânia", "México", "Micronésia", "Moçambique", "Moldávia", "Mônaco", "Mongólia", "Montenegro", "Myanmar",
	"Namíbia", "Nauru", "Nepal", "Nicarágua", "Níger", "Nigéria", "Noruega", "Nova Zelândia",
	"Omã",
	"Países Baixos", "Palau", "Panamá", "Papua-Nova Guiné", "Paquistão", "Paraguai", "Peru", "Polônia", "Portugal", "Palestina",
	"Quênia",
	"Reino Unido", "República Centro-Africana", "República Checa", "República Democrática do Congo", "Romênia", "Rússia", "Ruanda",
	"Samoa", "San Marino", "Santa Lúcia", "São Cristóvão e Nevis", "São Tomé e Príncipe", "São Vicente e Granadinas", "Seicheles", "Senegal", "Serra Leoa", "Sérvia", "Singapura", "Síria", "Somália", "Sri Lanka", "Sudão", "Sudão do Sul", "Suécia", "Suíça", "Suriname",
	"Tailândia", "Taiwan", "Tajiquistão", "Tanzânia", "Timor-Leste", "Togo", "Tonga", "Trinidad e Tobago", "Tunísia", "Turcomenistão", "Turquia", "Tuvalu",
	"Ucrânia", "Uganda", "Uruguai", "Uzbequistão",
	"Vanuatu", "Vaticano", "Venezuela", "Vietnã",
	"Zâmbia", "Zimbábue",
}

// byNormalized maps the normalized (lowercase, diacritic-free) form of each
// name to its canonical casing.
var byNormalized = func() map[string]string {
	m := make(map[string]string, len(All))
	for _, name := range All {
		m[utils.NormalizeText(name)] = name
	}
	return m
}()

// Canonical resolves name against the enumeration ignoring case and
// diacritics, returning the canonical casing. The second return value is
// false when the name is not in the enumeration.
func Canonical(name string) (string, bool) {
	c, ok := byNormalized[utils.NormalizeText(name)]
	return c, ok
}

// Valid reports whether name resolves against the enumeration.
func Valid(name string) bool {
	_, ok := Canonical(name)
	return ok
}
