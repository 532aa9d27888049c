package utils

// LuhnCheckDigit returns the check digit that makes body+digit pass the Luhn checksum.
// body must be ASCII digits.
func LuhnCheckDigit(body string) byte {
	sum, double := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}

// LuhnValid reports whether number is all digits and its last digit is a valid Luhn check digit
func LuhnValid(number string) bool {
	if len(number) < 2 || !IsDigits(number) {
		return false
	}
	return number[len(number)-1] == LuhnCheckDigit(number[:len(number)-1])
}
