// Package extract вытаскивает номер заказа из произвольного текста назначения
// банковского перевода.
package extract

import (
	"regexp"
	"strings"
)

// pattern именованный шаблон каскада. Name попадает в журнал попыток сверки,
// чтобы оператор видел, каким правилом распознан код.
type pattern struct {
	name string
	re   *regexp.Regexp
}

// cascade упорядоченный каскад форматов, от самого специфичного к самому
// общему. Побеждает первый сработавший шаблон.
//
// Формат номера заказа менялся между релизами фронтенда (с дефисами → без
// дефисов), а типы заказов (оплата столика и заказ на вынос/доставку) имеют
// разные префиксы. Порядок каскада НЕЛЬЗЯ менять без аудита того, какие
// исторические номера перестанут парситься: общие шаблоны перехватят
// специфичные коды, если окажутся раньше них.
//
// Фраза "DAT MON <код>" (оформление заказа) отдельного шаблона не требует:
// поиск идет по всей строке, код внутри фразы находят те же шаблоны.
var cascade = []pattern{
	// оплата столика: префикс + 8 цифр даты + 6 цифр последовательности.
	{name: "table-dashed", re: regexp.MustCompile(`\bTBL-\d{8}-\d{6}\b`)},
	{name: "table-plain", re: regexp.MustCompile(`\bTBL\d{14}\b`)},
	// заказ: дефисный формат старых релизов и сплошной текущий.
	{name: "order-dashed", re: regexp.MustCompile(`\bORD-\d{8}-\d{6}\b`)},
	{name: "order-plain", re: regexp.MustCompile(`\bORD\d{14}\b`)},
	// общий случай для не перечисленных явно семейств кодов.
	{name: "generic-prefixed", re: regexp.MustCompile(`\b[A-Z]{2,3}\d{6,}\b`)},
	// крайний случай: голая последовательность от 8 цифр.
	{name: "bare-digits", re: regexp.MustCompile(`\b\d{8,}\b`)},
}

// Extract ищет номер заказа в тексте назначения платежа. Возвращает код в
// верхнем регистре и признак успеха. Отсутствие кода — ожидаемый и частый
// исход (большинство переводов с заказами не связаны), ошибкой не является.
func Extract(description string) (string, bool) {
	code, _, ok := ExtractWithPattern(description)
	return code, ok
}

// ExtractWithPattern как Extract, но дополнительно возвращает имя сработавшего
// шаблона каскада.
func ExtractWithPattern(description string) (string, string, bool) {
	normalized := strings.ToUpper(description)

	for _, p := range cascade {
		if code := p.re.FindString(normalized); code != "" {
			return code, p.name, true
		}
	}
	return "", "", false
}
