package attribute

// Literal (arity-0) attribute kinds and their canonical wire strings,
// transcribed in the grouping order of original_source/src/gdcs/attr.rs.
const (
	KindDimmer Kind = "Dimmer"

	KindPan                Kind = "Pan"
	KindTilt               Kind = "Tilt"
	KindPanRotate          Kind = "PanRotate"
	KindTiltRotate         Kind = "TiltRotate"
	KindPositionEffect     Kind = "PositionEffect"
	KindPositionEffectRate Kind = "PositionEffectRate"
	KindPositionEffectFade Kind = "PositionEffectFade"
	KindXyzX               Kind = "XyzX"
	KindXyzY               Kind = "XyzY"
	KindXyzZ               Kind = "XyzZ"
	KindRotX               Kind = "RotX"
	KindRotY               Kind = "RotY"
	KindRotZ               Kind = "RotZ"
	KindScaleX             Kind = "ScaleX"
	KindScaleY             Kind = "ScaleY"
	KindScaleZ             Kind = "ScaleZ"
	KindScaleXYZ           Kind = "ScaleXYZ"

	KindPlayMode  Kind = "PlayMode"
	KindPlayBegin Kind = "PlayBegin"
	KindPlayEnd   Kind = "PlayEnd"
	KindPlaySpeed Kind = "PlaySpeed"

	KindColorAddR  Kind = "ColorAddR"
	KindColorAddG  Kind = "ColorAddG"
	KindColorAddB  Kind = "ColorAddB"
	KindColorAddC  Kind = "ColorAddC"
	KindColorAddM  Kind = "ColorAddM"
	KindColorAddY  Kind = "ColorAddY"
	KindColorAddRY Kind = "ColorAddRY"
	KindColorAddGY Kind = "ColorAddGY"
	KindColorAddGC Kind = "ColorAddGC"
	KindColorAddBC Kind = "ColorAddBC"
	KindColorAddBM Kind = "ColorAddBM"
	KindColorAddRM Kind = "ColorAddRM"
	KindColorAddW  Kind = "ColorAddW"
	KindColorAddWW Kind = "ColorAddWW"
	KindColorAddCW Kind = "ColorAddCW"
	KindColorAddUV Kind = "ColorAddUV"
	KindColorSubR  Kind = "ColorSubR"
	KindColorSubG  Kind = "ColorSubG"
	KindColorSubB  Kind = "ColorSubB"
	KindColorSubC  Kind = "ColorSubC"
	KindColorSubM  Kind = "ColorSubM"
	KindColorSubY  Kind = "ColorSubY"

	KindCto           Kind = "Cto"
	KindCtc           Kind = "Ctc"
	KindCtb           Kind = "Ctb"
	KindTint          Kind = "Tint"
	KindHsbHue        Kind = "HsbHue"
	KindHsbSaturation Kind = "HsbSaturation"
	KindHsbBrightness Kind = "HsbBrightness"
	KindHsbQuality    Kind = "HsbQuality"
	KindCieX          Kind = "CieX"
	KindCieY          Kind = "CieY"
	KindCieBrightness Kind = "CieBrightness"

	KindColorRgbRed     Kind = "ColorRgbRed"
	KindColorRgbGreen   Kind = "ColorRgbGreen"
	KindColorRgbBlue    Kind = "ColorRgbBlue"
	KindColorRgbCyan    Kind = "ColorRgbCyan"
	KindColorRgbMagenta Kind = "ColorRgbMagenta"
	KindColorRgbYellow  Kind = "ColorRgbYellow"
	KindColorRgbQuality Kind = "ColorRgbQuality"

	KindVideoBoostR      Kind = "VideoBoostR"
	KindVideoBoostG      Kind = "VideoBoostG"
	KindVideoBoostB      Kind = "VideoBoostB"
	KindVideoHueShift    Kind = "VideoHueShift"
	KindVideoSaturation  Kind = "VideoSaturation"
	KindVideoBrightness  Kind = "VideoBrightness"
	KindVideoContrast    Kind = "VideoContrast"
	KindVideoKeyColorR   Kind = "VideoKeyColorR"
	KindVideoKeyColorG   Kind = "VideoKeyColorG"
	KindVideoKeyColorB   Kind = "VideoKeyColorB"
	KindVideoKeyIntensity Kind = "VideoKeyIntensity"
	KindVideoKeyTolerance Kind = "VideoKeyTolerance"

	KindStrobeDuration              Kind = "StrobeDuration"
	KindStrobeRate                  Kind = "StrobeRate"
	KindStrobeFrequency             Kind = "StrobeFrequency"
	KindStrobeModeShutter           Kind = "StrobeModeShutter"
	KindStrobeModeStrobe            Kind = "StrobeModeStrobe"
	KindStrobeModePulse             Kind = "StrobeModePulse"
	KindStrobeModePulseOpen         Kind = "StrobeModePulseOpen"
	KindStrobeModePulseClose        Kind = "StrobeModePulseClose"
	KindStrobeModeRandom            Kind = "StrobeModeRandom"
	KindStrobeModeRandomPulse       Kind = "StrobeModeRandomPulse"
	KindStrobeModeRandomPulseOpen   Kind = "StrobeModeRandomPulseOpen"
	KindStrobeModeRandomPulseClose  Kind = "StrobeModeRandomPulseClose"
	KindStrobeModeEffect            Kind = "StrobeModeEffect"

	KindIris                 Kind = "Iris"
	KindIrisStrobe           Kind = "IrisStrobe"
	KindIrisStrobeRandom     Kind = "IrisStrobeRandom"
	KindIrisPulseClose       Kind = "IrisPulseClose"
	KindIrisPulseOpen        Kind = "IrisPulseOpen"
	KindIrisRandomPulseClose Kind = "IrisRandomPulseClose"
	KindIrisRandomPulseOpen  Kind = "IrisRandomPulseOpen"

	KindEffectsSync         Kind = "EffectsSync"
	KindBeamShaper          Kind = "BeamShaper"
	KindBeamShaperMacro     Kind = "BeamShaperMacro"
	KindBeamShaperPos       Kind = "BeamShaperPos"
	KindBeamShaperPosRotate Kind = "BeamShaperPosRotate"
	KindZoom                Kind = "Zoom"
	KindZoomModeSpot        Kind = "ZoomModeSpot"
	KindZoomModeBeam        Kind = "ZoomModeBeam"
	KindDigitalZoom         Kind = "DigitalZoom"

	KindDimmerMode                 Kind = "DimmerMode"
	KindDimmerCurve                Kind = "DimmerCurve"
	KindBlackoutMode               Kind = "BlackoutMode"
	KindLedFrequency               Kind = "LedFrequency"
	KindLedZoneMode                Kind = "LedZoneMode"
	KindPixelMode                  Kind = "PixelMode"
	KindPanMode                    Kind = "PanMode"
	KindTiltMode                   Kind = "TiltMode"
	KindPanTiltMode                Kind = "PanTiltMode"
	KindPositionModes              Kind = "PositionModes"
	KindGoboWheelShortcutMode      Kind = "GoboWheelShortcutMode"
	KindAnimationWheelShortcutMode Kind = "AnimationWheelShortcutMode"
	KindColorWheelShortcutMode     Kind = "ColorWheelShortcutMode"
	KindCyanMode                   Kind = "CyanMode"
	KindMagentaMode                Kind = "MagentaMode"
	KindYellowMode                 Kind = "YellowMode"
	KindColorMixMode               Kind = "ColorMixMode"
	KindChromaticMode              Kind = "ChromaticMode"
	KindColorCalibrationMode       Kind = "ColorCalibrationMode"
	KindColorConsistency           Kind = "ColorConsistency"
	KindColorControl               Kind = "ColorControl"
	KindColorModelMode             Kind = "ColorModelMode"
	KindColorSettingsReset         Kind = "ColorSettingsReset"
	KindColorUniformity            Kind = "ColorUniformity"
	KindCriMode                    Kind = "CriMode"
	KindCustomColor                Kind = "CustomColor"
	KindUvStability                Kind = "UvStability"
	KindWavelengthCorrection       Kind = "WavelengthCorrection"
	KindWhiteCount                 Kind = "WhiteCount"
	KindStrobeMode                 Kind = "StrobeMode"
	KindZoomMode                   Kind = "ZoomMode"
	KindFocusMode                  Kind = "FocusMode"
	KindIrisMode                   Kind = "IrisMode"
	KindFollowSpotMode             Kind = "FollowSpotMode"
	KindBeamEffectIndexRotateMode  Kind = "BeamEffectIndexRotateMode"
	KindIntensityMSpeed            Kind = "IntensityMSpeed"
	KindPositionMSpeed             Kind = "PositionMSpeed"
	KindColorMixMSpeed             Kind = "ColorMixMSpeed"
	KindColorWheelSelectMSpeed     Kind = "ColorWheelSelectMSpeed"
	KindIrisMSpeed                 Kind = "IrisMSpeed"
	KindFocusMSpeed                Kind = "FocusMSpeed"
	KindZoomMSpeed                 Kind = "ZoomMSpeed"
	KindFrameMSpeed                Kind = "FrameMSpeed"
	KindGlobalMSpeed               Kind = "GlobalMSpeed"
	KindReflectorAdjust            Kind = "ReflectorAdjust"
	KindFixtureGlobalReset         Kind = "FixtureGlobalReset"
	KindDimmerReset                Kind = "DimmerReset"
	KindShutterReset               Kind = "ShutterReset"
	KindBeamReset                  Kind = "BeamReset"
	KindColorMixReset              Kind = "ColorMixReset"
	KindColorWheelReset            Kind = "ColorWheelReset"
	KindFocusReset                 Kind = "FocusReset"
	KindFrameReset                 Kind = "FrameReset"
	KindGoboWheelReset             Kind = "GoboWheelReset"
	KindIntensityReset             Kind = "IntensityReset"
	KindIrisReset                  Kind = "IrisReset"
	KindPositionReset              Kind = "PositionReset"
	KindPanReset                   Kind = "PanReset"
	KindTiltReset                  Kind = "TiltReset"
	KindZoomReset                  Kind = "ZoomReset"
	KindCtbReset                   Kind = "CtbReset"
	KindCtoReset                   Kind = "CtoReset"
	KindCtcReset                   Kind = "CtcReset"
	KindAnimationSystemReset       Kind = "AnimationSystemReset"
	KindFixtureCalibrationReset    Kind = "FixtureCalibrationReset"
	KindFunction                   Kind = "Function"
	KindLampControl                Kind = "LampControl"
	KindDisplayIntensity           Kind = "DisplayIntensity"
	KindDmxInput                   Kind = "DmxInput"
	KindNoFeature                  Kind = "NoFeature"
	KindLampPowerMode              Kind = "LampPowerMode"
	KindFans                       Kind = "Fans"
	KindShaperRot                  Kind = "ShaperRot"
	KindShaperMacros               Kind = "ShaperMacros"
	KindShaperMacrosSpeed          Kind = "ShaperMacrosSpeed"
	KindVideo                      Kind = "Video"
	KindVideoBlendMode             Kind = "VideoBlendMode"
	KindInputSource                Kind = "InputSource"
	KindFieldOfView                Kind = "FieldOfView"

	// KindCustom marks a fixture-specific name with no standard mapping.
	KindCustom Kind = "Custom"
)

// Indexed (arity-1) attribute kinds: Prefix + N + Suffix.
const (
	KindGobo               Kind = "Gobo"
	KindGoboSelectSpin      Kind = "GoboSelectSpin"
	KindGoboSelectShake     Kind = "GoboSelectShake"
	KindGoboSelectEffects   Kind = "GoboSelectEffects"
	KindGoboWheelIndex      Kind = "GoboWheelIndex"
	KindGoboWheelSpin       Kind = "GoboWheelSpin"
	KindGoboWheelShake      Kind = "GoboWheelShake"
	KindGoboWheelRandom     Kind = "GoboWheelRandom"
	KindGoboWheelAudio      Kind = "GoboWheelAudio"
	KindGoboPos             Kind = "GoboPos"
	KindGoboPosRotate       Kind = "GoboPosRotate"
	KindGoboPosShake        Kind = "GoboPosShake"

	KindAnimationWheel              Kind = "AnimationWheel"
	KindAnimationWheelAudio         Kind = "AnimationWheelAudio"
	KindAnimationWheelMacro         Kind = "AnimationWheelMacro"
	KindAnimationWheelRandom        Kind = "AnimationWheelRandom"
	KindAnimationWheelSelectEffects Kind = "AnimationWheelSelectEffects"
	KindAnimationWheelSelectShake   Kind = "AnimationWheelSelectShake"
	KindAnimationWheelSelectSpin    Kind = "AnimationWheelSelectSpin"
	KindAnimationWheelPos           Kind = "AnimationWheelPos"
	KindAnimationWheelPosRotate     Kind = "AnimationWheelPosRotate"
	KindAnimationWheelPosShake      Kind = "AnimationWheelPosShake"

	KindAnimationSystem          Kind = "AnimationSystem"
	KindAnimationSystemRamp      Kind = "AnimationSystemRamp"
	KindAnimationSystemShake     Kind = "AnimationSystemShake"
	KindAnimationSystemAudio     Kind = "AnimationSystemAudio"
	KindAnimationSystemRandom    Kind = "AnimationSystemRandom"
	KindAnimationSystemPos       Kind = "AnimationSystemPos"
	KindAnimationSystemPosRotate Kind = "AnimationSystemPosRotate"
	KindAnimationSystemPosShake  Kind = "AnimationSystemPosShake"
	KindAnimationSystemPosRandom Kind = "AnimationSystemPosRandom"
	KindAnimationSystemPosAudio  Kind = "AnimationSystemPosAudio"
	KindAnimationSystemMacro     Kind = "AnimationSystemMacro"

	KindMediaFolder  Kind = "MediaFolder"
	KindMediaContent Kind = "MediaContent"
	KindModelFolder  Kind = "ModelFolder"
	KindModelContent Kind = "ModelContent"

	KindColorEffects    Kind = "ColorEffects"
	KindColor           Kind = "Color"
	KindColorWheelIndex Kind = "ColorWheelIndex"
	KindColorWheelSpin  Kind = "ColorWheelSpin"
	KindColorWheelRandom Kind = "ColorWheelRandom"
	KindColorWheelAudio Kind = "ColorWheelAudio"

	KindColorMacro     Kind = "ColorMacro"
	KindColorMacroRate Kind = "ColorMacroRate"

	KindShutter                        Kind = "Shutter"
	KindShutterStrobe                  Kind = "ShutterStrobe"
	KindShutterStrobePulse             Kind = "ShutterStrobePulse"
	KindShutterStrobePulseClose        Kind = "ShutterStrobePulseClose"
	KindShutterStrobePulseOpen         Kind = "ShutterStrobePulseOpen"
	KindShutterStrobeRandom            Kind = "ShutterStrobeRandom"
	KindShutterStrobeRandomPulse       Kind = "ShutterStrobeRandomPulse"
	KindShutterStrobeRandomPulseClose  Kind = "ShutterStrobeRandomPulseClose"
	KindShutterStrobeRandomPulseOpen   Kind = "ShutterStrobeRandomPulseOpen"
	KindShutterStrobeEffect            Kind = "ShutterStrobeEffect"

	KindFrost          Kind = "Frost"
	KindFrostPulseOpen Kind = "FrostPulseOpen"
	KindFrostPulseClose Kind = "FrostPulseClose"
	KindFrostRamp      Kind = "FrostRamp"

	KindPrism           Kind = "Prism"
	KindPrismSelectSpin Kind = "PrismSelectSpin"
	KindPrismMacro      Kind = "PrismMacro"
	KindPrismPos        Kind = "PrismPos"
	KindPrismPosRotate  Kind = "PrismPosRotate"

	KindEffects         Kind = "Effects"
	KindEffectsRate     Kind = "EffectsRate"
	KindEffectsFade     Kind = "EffectsFade"
	KindEffectsPos      Kind = "EffectsPos"
	KindEffectsPosRotate Kind = "EffectsPosRotate"

	KindFocus         Kind = "Focus"
	KindFocusAdjust   Kind = "FocusAdjust"
	KindFocusDistance Kind = "FocusDistance"

	KindControl Kind = "Control"

	KindGoboWheelMode      Kind = "GoboWheelMode"
	KindAnimationWheelMode Kind = "AnimationWheelMode"
	KindColorMode          Kind = "ColorMode"
	KindFanMode            Kind = "FanMode"
	KindGoboWheelMSpeed    Kind = "GoboWheelMSpeed"
	KindPrismMSpeed        Kind = "PrismMSpeed"
	KindFrostMSpeed        Kind = "FrostMSpeed"

	KindBlower Kind = "Blower"
	KindFan    Kind = "Fan"
	KindFog    Kind = "Fog"
	KindHaze   Kind = "Haze"

	KindBladeA   Kind = "BladeA"
	KindBladeB   Kind = "BladeB"
	KindBladeRot Kind = "BladeRot"

	KindBladeSoftA Kind = "BladeSoftA"
	KindBladeSoftB Kind = "BladeSoftB"
	KindKeyStoneA  Kind = "KeyStoneA"
	KindKeyStoneB  Kind = "KeyStoneB"

	KindVideoEffectType    Kind = "VideoEffectType"
	KindVideoCamera        Kind = "VideoCamera"
	KindVideoSoundVolume   Kind = "VideoSoundVolume"
)

// Indexed (arity-2) attribute kinds: Prefix + N + Middle + M + Suffix.
const (
	KindEffectsAdjust        Kind = "EffectsAdjust"
	KindVideoEffectParameter Kind = "VideoEffectParameter"
)

var literalSpecs = []struct {
	Kind Kind
	Str  string
}{
	{KindDimmer, "Dimmer"},

	{KindPan, "Pan"},
	{KindTilt, "Tilt"},
	{KindPanRotate, "PanRotate"},
	{KindTiltRotate, "TiltRotate"},
	{KindPositionEffect, "PositionEffect"},
	{KindPositionEffectRate, "PositionEffectRate"},
	{KindPositionEffectFade, "PositionEffectFade"},
	{KindXyzX, "XYZ_X"},
	{KindXyzY, "XYZ_Y"},
	{KindXyzZ, "XYZ_Z"},
	{KindRotX, "Rot_X"},
	{KindRotY, "Rot_Y"},
	{KindRotZ, "Rot_Z"},
	{KindScaleX, "Scale_X"},
	{KindScaleY, "Scale_Y"},
	{KindScaleZ, "Scale_Z"},
	{KindScaleXYZ, "Scale_XYZ"},

	{KindPlayMode, "PlayMode"},
	{KindPlayBegin, "PlayBegin"},
	{KindPlayEnd, "PlayEnd"},
	{KindPlaySpeed, "PlaySpeed"},

	{KindColorAddR, "ColorAdd_R"},
	{KindColorAddG, "ColorAdd_G"},
	{KindColorAddB, "ColorAdd_B"},
	{KindColorAddC, "ColorAdd_C"},
	{KindColorAddM, "ColorAdd_M"},
	{KindColorAddY, "ColorAdd_Y"},
	{KindColorAddRY, "ColorAdd_RY"},
	{KindColorAddGY, "ColorAdd_GY"},
	{KindColorAddGC, "ColorAdd_GC"},
	{KindColorAddBC, "ColorAdd_BC"},
	{KindColorAddBM, "ColorAdd_BM"},
	{KindColorAddRM, "ColorAdd_RM"},
	{KindColorAddW, "ColorAdd_W"},
	{KindColorAddWW, "ColorAdd_WW"},
	{KindColorAddCW, "ColorAdd_CW"},
	{KindColorAddUV, "ColorAdd_UV"},
	{KindColorSubR, "ColorSub_R"},
	{KindColorSubG, "ColorSub_G"},
	{KindColorSubB, "ColorSub_B"},
	{KindColorSubC, "ColorSub_C"},
	{KindColorSubM, "ColorSub_M"},
	{KindColorSubY, "ColorSub_Y"},

	{KindCto, "CTO"},
	{KindCtc, "CTC"},
	{KindCtb, "CTB"},
	{KindTint, "Tint"},
	{KindHsbHue, "HSB_Hue"},
	{KindHsbSaturation, "HSB_Saturation"},
	{KindHsbBrightness, "HSB_Brightness"},
	{KindHsbQuality, "HSB_Quality"},
	{KindCieX, "CIE_X"},
	{KindCieY, "CIE_Y"},
	{KindCieBrightness, "CIE_Brightness"},

	{KindColorRgbRed, "ColorRGB_Red"},
	{KindColorRgbGreen, "ColorRGB_Green"},
	{KindColorRgbBlue, "ColorRGB_Blue"},
	{KindColorRgbCyan, "ColorRGB_Cyan"},
	{KindColorRgbMagenta, "ColorRGB_Magenta"},
	{KindColorRgbYellow, "ColorRGB_Yellow"},
	{KindColorRgbQuality, "ColorRGB_Quality"},

	{KindVideoBoostR, "VideoBoost_R"},
	{KindVideoBoostG, "VideoBoost_G"},
	{KindVideoBoostB, "VideoBoost_B"},
	{KindVideoHueShift, "VideoHueShift"},
	{KindVideoSaturation, "VideoSaturation"},
	{KindVideoBrightness, "VideoBrightness"},
	{KindVideoContrast, "VideoContrast"},
	{KindVideoKeyColorR, "VideoKeyColor_R"},
	{KindVideoKeyColorG, "VideoKeyColor_G"},
	{KindVideoKeyColorB, "VideoKeyColor_B"},
	{KindVideoKeyIntensity, "VideoKeyIntensity"},
	{KindVideoKeyTolerance, "VideoKeyTolerance"},

	{KindStrobeDuration, "StrobeDuration"},
	{KindStrobeRate, "StrobeRate"},
	{KindStrobeFrequency, "StrobeFrequency"},
	{KindStrobeModeShutter, "StrobeModeShutter"},
	{KindStrobeModeStrobe, "StrobeModeStrobe"},
	{KindStrobeModePulse, "StrobeModePulse"},
	{KindStrobeModePulseOpen, "StrobeModePulseOpen"},
	{KindStrobeModePulseClose, "StrobeModePulseClose"},
	{KindStrobeModeRandom, "StrobeModeRandom"},
	{KindStrobeModeRandomPulse, "StrobeModeRandomPulse"},
	{KindStrobeModeRandomPulseOpen, "StrobeModeRandomPulseOpen"},
	{KindStrobeModeRandomPulseClose, "StrobeModeRandomPulseClose"},
	{KindStrobeModeEffect, "StrobeModeEffect"},

	{KindIris, "Iris"},
	{KindIrisStrobe, "IrisStrobe"},
	{KindIrisStrobeRandom, "IrisStrobeRandom"},
	{KindIrisPulseClose, "IrisPulseClose"},
	{KindIrisPulseOpen, "IrisPulseOpen"},
	{KindIrisRandomPulseClose, "IrisRandomPulseClose"},
	{KindIrisRandomPulseOpen, "IrisRandomPulseOpen"},

	{KindEffectsSync, "EffectsSync"},
	{KindBeamShaper, "BeamShaper"},
	{KindBeamShaperMacro, "BeamShaperMacro"},
	{KindBeamShaperPos, "BeamShaperPos"},
	{KindBeamShaperPosRotate, "BeamShaperPosRotate"},
	{KindZoom, "Zoom"},
	{KindZoomModeSpot, "ZoomModeSpot"},
	{KindZoomModeBeam, "ZoomModeBeam"},
	{KindDigitalZoom, "DigitalZoom"},

	{KindDimmerMode, "DimmerMode"},
	{KindDimmerCurve, "DimmerCurve"},
	{KindBlackoutMode, "BlackoutMode"},
	{KindLedFrequency, "LEDFrequency"},
	{KindLedZoneMode, "LEDZoneMode"},
	{KindPixelMode, "PixelMode"},
	{KindPanMode, "PanMode"},
	{KindTiltMode, "TiltMode"},
	{KindPanTiltMode, "PanTiltMode"},
	{KindPositionModes, "PositionModes"},
	{KindGoboWheelShortcutMode, "GoboWheelShortcutMode"},
	{KindAnimationWheelShortcutMode, "AnimationWheelShortcutMode"},
	{KindColorWheelShortcutMode, "ColorWheelShortcutMode"},
	{KindCyanMode, "CyanMode"},
	{KindMagentaMode, "MagentaMode"},
	{KindYellowMode, "YellowMode"},
	{KindColorMixMode, "ColorMixMode"},
	{KindChromaticMode, "ChromaticMode"},
	{KindColorCalibrationMode, "ColorCalibrationMode"},
	{KindColorConsistency, "ColorConsistency"},
	{KindColorControl, "ColorControl"},
	{KindColorModelMode, "ColorModelMode"},
	{KindColorSettingsReset, "ColorSettingsReset"},
	{KindColorUniformity, "ColorUniformity"},
	{KindCriMode, "CRIMode"},
	{KindCustomColor, "CustomColor"},
	{KindUvStability, "UVStability"},
	{KindWavelengthCorrection, "WavelengthCorrection"},
	{KindWhiteCount, "WhiteCount"},
	{KindStrobeMode, "StrobeMode"},
	{KindZoomMode, "ZoomMode"},
	{KindFocusMode, "FocusMode"},
	{KindIrisMode, "IrisMode"},
	{KindFollowSpotMode, "FollowSpotMode"},
	{KindBeamEffectIndexRotateMode, "BeamEffectIndexRotateMode"},
	{KindIntensityMSpeed, "IntensityMSpeed"},
	{KindPositionMSpeed, "PositionMSpeed"},
	{KindColorMixMSpeed, "ColorMixMSpeed"},
	{KindColorWheelSelectMSpeed, "ColorWheelSelectMSpeed"},
	{KindIrisMSpeed, "IrisMSpeed"},
	{KindFocusMSpeed, "FocusMSpeed"},
	{KindZoomMSpeed, "ZoomMSpeed"},
	{KindFrameMSpeed, "FrameMSpeed"},
	{KindGlobalMSpeed, "GlobalMSpeed"},
	{KindReflectorAdjust, "ReflectorAdjust"},
	{KindFixtureGlobalReset, "FixtureGlobalReset"},
	{KindDimmerReset, "DimmerReset"},
	{KindShutterReset, "ShutterReset"},
	{KindBeamReset, "BeamReset"},
	{KindColorMixReset, "ColorMixReset"},
	{KindColorWheelReset, "ColorWheelReset"},
	{KindFocusReset, "FocusReset"},
	{KindFrameReset, "FrameReset"},
	{KindGoboWheelReset, "GoboWheelReset"},
	{KindIntensityReset, "IntensityReset"},
	{KindIrisReset, "IrisReset"},
	{KindPositionReset, "PositionReset"},
	{KindPanReset, "PanReset"},
	{KindTiltReset, "TiltReset"},
	{KindZoomReset, "ZoomReset"},
	{KindCtbReset, "CTBReset"},
	{KindCtoReset, "CTOReset"},
	{KindCtcReset, "CTCReset"},
	{KindAnimationSystemReset, "AnimationSystemReset"},
	{KindFixtureCalibrationReset, "FixtureCalibrationReset"},
	{KindFunction, "Function"},
	{KindLampControl, "LampControl"},
	{KindDisplayIntensity, "DisplayIntensity"},
	{KindDmxInput, "DMXInput"},
	{KindNoFeature, "NoFeature"},
	{KindLampPowerMode, "LampPowerMode"},
	{KindFans, "Fans"},
	{KindShaperRot, "ShaperRot"},
	{KindShaperMacros, "ShaperMacros"},
	{KindShaperMacrosSpeed, "ShaperMacrosSpeed"},
	{KindVideo, "Video"},
	{KindVideoBlendMode, "VideoBlendMode"},
	{KindInputSource, "InputSource"},
	{KindFieldOfView, "FieldOfView"},
}

var arity1Specs = []arity1Spec{
	{KindGobo, "Gobo", ""},
	{KindGoboSelectSpin, "Gobo", "SelectSpin"},
	{KindGoboSelectShake, "Gobo", "SelectShake"},
	{KindGoboSelectEffects, "Gobo", "SelectEffects"},
	{KindGoboWheelIndex, "Gobo", "WheelIndex"},
	{KindGoboWheelSpin, "Gobo", "WheelSpin"},
	{KindGoboWheelShake, "Gobo", "WheelShake"},
	{KindGoboWheelRandom, "Gobo", "WheelRandom"},
	{KindGoboWheelAudio, "Gobo", "WheelAudio"},
	{KindGoboPos, "Gobo", "Pos"},
	{KindGoboPosRotate, "Gobo", "PosRotate"},
	{KindGoboPosShake, "Gobo", "PosShake"},

	{KindAnimationWheel, "AnimationWheel", ""},
	{KindAnimationWheelAudio, "AnimationWheel", "Audio"},
	{KindAnimationWheelMacro, "AnimationWheel", "Macro"},
	{KindAnimationWheelRandom, "AnimationWheel", "Random"},
	{KindAnimationWheelSelectEffects, "AnimationWheel", "SelectEffects"},
	{KindAnimationWheelSelectShake, "AnimationWheel", "SelectShake"},
	{KindAnimationWheelSelectSpin, "AnimationWheel", "SelectSpin"},
	{KindAnimationWheelPos, "AnimationWheel", "Pos"},
	{KindAnimationWheelPosRotate, "AnimationWheel", "PosRotate"},
	{KindAnimationWheelPosShake, "AnimationWheel", "PosShake"},

	{KindAnimationSystem, "AnimationSystem", ""},
	{KindAnimationSystemRamp, "AnimationSystem", "Ramp"},
	{KindAnimationSystemShake, "AnimationSystem", "Shake"},
	{KindAnimationSystemAudio, "AnimationSystem", "Audio"},
	{KindAnimationSystemRandom, "AnimationSystem", "Random"},
	{KindAnimationSystemPos, "AnimationSystem", "Pos"},
	{KindAnimationSystemPosRotate, "AnimationSystem", "PosRotate"},
	{KindAnimationSystemPosShake, "AnimationSystem", "PosShake"},
	{KindAnimationSystemPosRandom, "AnimationSystem", "PosRandom"},
	{KindAnimationSystemPosAudio, "AnimationSystem", "PosAudio"},
	{KindAnimationSystemMacro, "AnimationSystem", "Macro"},

	{KindMediaFolder, "MediaFolder", ""},
	{KindMediaContent, "MediaContent", ""},
	{KindModelFolder, "ModelFolder", ""},
	{KindModelContent, "ModelContent", ""},

	{KindColorEffects, "ColorEffects", ""},
	{KindColor, "Color", ""},
	{KindColorWheelIndex, "Color", "WheelIndex"},
	{KindColorWheelSpin, "Color", "WheelSpin"},
	{KindColorWheelRandom, "Color", "WheelRandom"},
	{KindColorWheelAudio, "Color", "WheelAudio"},

	{KindColorMacro, "ColorMacro", ""},
	{KindColorMacroRate, "ColorMacro", "Rate"},

	{KindShutter, "Shutter", ""},
	{KindShutterStrobe, "Shutter", "Strobe"},
	{KindShutterStrobePulse, "Shutter", "StrobePulse"},
	{KindShutterStrobePulseClose, "Shutter", "StrobePulseClose"},
	{KindShutterStrobePulseOpen, "Shutter", "StrobePulseOpen"},
	{KindShutterStrobeRandom, "Shutter", "StrobeRandom"},
	{KindShutterStrobeRandomPulse, "Shutter", "StrobeRandomPulse"},
	{KindShutterStrobeRandomPulseClose, "Shutter", "StrobeRandomPulseClose"},
	{KindShutterStrobeRandomPulseOpen, "Shutter", "StrobeRandomPulseOpen"},
	{KindShutterStrobeEffect, "Shutter", "StrobeEffect"},

	{KindFrost, "Frost", ""},
	{KindFrostPulseOpen, "Frost", "PulseOpen"},
	{KindFrostPulseClose, "Frost", "PulseClose"},
	{KindFrostRamp, "Frost", "Ramp"},

	{KindPrism, "Prism", ""},
	{KindPrismSelectSpin, "Prism", "SelectSpin"},
	{KindPrismMacro, "Prism", "Macro"},
	{KindPrismPos, "Prism", "Pos"},
	{KindPrismPosRotate, "Prism", "PosRotate"},

	{KindEffects, "Effects", ""},
	{KindEffectsRate, "Effects", "Rate"},
	{KindEffectsFade, "Effects", "Fade"},
	{KindEffectsPos, "Effects", "Pos"},
	{KindEffectsPosRotate, "Effects", "PosRotate"},

	{KindFocus, "Focus", ""},
	{KindFocusAdjust, "Focus", "Adjust"},
	{KindFocusDistance, "Focus", "Distance"},

	{KindControl, "Control", ""},

	{KindGoboWheelMode, "Gobo", "WheelMode"},
	{KindAnimationWheelMode, "Animation", "WheelMode"},
	{KindColorMode, "Color", "Mode"},
	{KindFanMode, "Fan", "Mode"},
	{KindGoboWheelMSpeed, "Gobo", "WheelMSpeed"},
	{KindPrismMSpeed, "Prism", "MSpeed"},
	{KindFrostMSpeed, "Frost", "MSpeed"},

	{KindBlower, "Blower", ""},
	{KindFan, "Fan", ""},
	{KindFog, "Fog", ""},
	{KindHaze, "Haze", ""},

	{KindBladeA, "Blade", "A"},
	{KindBladeB, "Blade", "B"},
	{KindBladeRot, "Blade", "Rot"},
	{KindBladeSoftA, "BladeSoft", "A"},
	{KindBladeSoftB, "BladeSoft", "B"},
	{KindKeyStoneA, "KeyStone", "A"},
	{KindKeyStoneB, "KeyStone", "B"},

	{KindVideoEffectType, "VideoEffect", "Type"},
	{KindVideoCamera, "VideoCamera", ""},
	{KindVideoSoundVolume, "VideoSoundVolume", ""},
}

var arity2Specs = []arity2Spec{
	{KindEffectsAdjust, "Effects", "Adjust", ""},
	{KindVideoEffectParameter, "VideoEffect", "Parameter", ""},
}

var (
	literalStrings = make(map[Kind]string, len(literalSpecs))
	kindByLiteral  = make(map[string]Kind, len(literalSpecs))
	arity1ByKind   = make(map[Kind]arity1Spec, len(arity1Specs))
	arity2ByKind   = make(map[Kind]arity2Spec, len(arity2Specs))
)

func init() {
	for _, s := range literalSpecs {
		literalStrings[s.Kind] = s.Str
		kindByLiteral[s.Str] = s.Kind
	}
	for _, s := range arity1Specs {
		arity1ByKind[s.Kind] = s
	}
	for _, s := range arity2Specs {
		arity2ByKind[s.Kind] = s
	}
}
