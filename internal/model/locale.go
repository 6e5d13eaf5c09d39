// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// LOCALE TYPE
// =============================================================================

// Locale identifies one of the supported UI languages.
// It drives welcome-message text and the speech-recognition language tag;
// changing the locale never rewrites messages already in a thread.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHindi   Locale = "hi"
	LocaleMarathi Locale = "mr"
)

// ParseLocale maps a raw string to a supported Locale, defaulting to English
// for anything unrecognized.
func ParseLocale(s string) Locale {
	switch Locale(s) {
	case LocaleHindi:
		return LocaleHindi
	case LocaleMarathi:
		return LocaleMarathi
	default:
		return LocaleEnglish
	}
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l == LocaleEnglish || l == LocaleHindi || l == LocaleMarathi
}

// String returns the locale code.
func (l Locale) String() string {
	return string(l)
}

// =============================================================================
// LOCALE STRINGS
// =============================================================================

// WelcomeMessage returns the AI greeting that seeds the very first thread.
func (l Locale) WelcomeMessage() string {
	switch l {
	case LocaleHindi:
		return "नमस्ते! मैं एग्री-सारथी हूँ। अपना पिनकोड सेट करके आरंभ करें।"
	case LocaleMarathi:
		return "नमस्कार! मी ऍग्री-सारथी आहे. कृपया तुमचा पिनकोड सेट करून प्रारंभ करा."
	default:
		return "Welcome to AgriSaathi! Please set your pincode to get started."
	}
}

// NewChatMessage returns the AI greeting that seeds every subsequent thread.
func (l Locale) NewChatMessage() string {
	switch l {
	case LocaleHindi:
		return "फिर से स्वागत है! मैं आपकी क्या मदद कर सकता हूँ?"
	case LocaleMarathi:
		return "पुन्हा स्वागत आहे! मी तुमची कशी मदत करू शकतो?"
	default:
		return "Welcome again! How can I help you?"
	}
}

// QueryFailureMessage returns the AI line appended when the query endpoint
// fails. The chat degrades to this text instead of surfacing an error box.
func (l Locale) QueryFailureMessage() string {
	switch l {
	case LocaleHindi:
		return "क्षमा करें, मैं अभी सेवा से संपर्क नहीं कर पा रहा हूँ। कृपया थोड़ी देर बाद पुनः प्रयास करें।"
	case LocaleMarathi:
		return "क्षमस्व, मी सध्या सेवेशी संपर्क करू शकत नाही. कृपया थोड्या वेळाने पुन्हा प्रयत्न करा."
	default:
		return "Sorry, I couldn't reach the AgriSaathi service. Please try again in a moment."
	}
}

// PincodeErrorMessage returns the validation prompt for a malformed pincode.
func (l Locale) PincodeErrorMessage() string {
	switch l {
	case LocaleHindi:
		return "कृपया मान्य 6-अंकीय पिनकोड दर्ज करें।"
	case LocaleMarathi:
		return "कृपया वैध 6-अंकी पिनकोड प्रविष्ट करा."
	default:
		return "Please enter a valid 6-digit pincode."
	}
}
